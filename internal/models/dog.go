package models

// Dog represents a dog that can be linked to people.
type Dog struct {
	// ID is the surrogate key assigned by storage. Zero until persisted.
	ID int64

	// Name is the dog's name.
	Name string
}

// NewDog creates an unsaved dog.
func NewDog(name string) *Dog {
	return &Dog{Name: name}
}

func (d *Dog) String() string {
	return d.Name
}

func (*Dog) record() {}
