package models

// PersonDogLink relates one person to one dog.
// (PersonID, DogID) is unique: there is at most one link per pair.
type PersonDogLink struct {
	// PersonID references Person.ID.
	PersonID int64

	// DogID references Dog.ID.
	DogID int64

	// IsOwner marks the person as an owner of the dog.
	// A vet or a walker is linked with IsOwner false.
	IsOwner bool

	// Person and Dog are optional references used when the link is saved in
	// the same unit of work as its ends. When set, their IDs take precedence
	// over PersonID and DogID.
	Person *Person
	Dog    *Dog
}

// NewLink creates an unsaved link between person and dog.
func NewLink(person *Person, dog *Dog, isOwner bool) *PersonDogLink {
	return &PersonDogLink{
		Person:  person,
		Dog:     dog,
		IsOwner: isOwner,
	}
}

// ResolveKeys copies the IDs of the referenced person and dog into
// PersonID and DogID.
func (l *PersonDogLink) ResolveKeys() {
	if l.Person != nil {
		l.PersonID = l.Person.ID
	}
	if l.Dog != nil {
		l.DogID = l.Dog.ID
	}
}

func (*PersonDogLink) record() {}
