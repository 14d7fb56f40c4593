package models

// Person represents someone who can be linked to dogs.
type Person struct {
	// ID is the surrogate key assigned by storage. Zero until persisted.
	ID int64

	// Name is the display name of the person.
	Name string
}

// NewPerson creates an unsaved person.
func NewPerson(name string) *Person {
	return &Person{Name: name}
}

func (p *Person) String() string {
	return p.Name
}

func (*Person) record() {}
