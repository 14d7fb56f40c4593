package models

import "testing"

func TestNewLinkResolveKeys(t *testing.T) {
	alice := NewPerson("Alice")
	fido := NewDog("Fido")
	link := NewLink(alice, fido, true)

	if !link.IsOwner {
		t.Error("Expected IsOwner to be true")
	}

	alice.ID, fido.ID = 3, 5
	link.ResolveKeys()
	if link.PersonID != 3 || link.DogID != 5 {
		t.Errorf("Keys mismatch: got (%d, %d), want (3, 5)", link.PersonID, link.DogID)
	}
}

func TestResolveKeysKeepsExplicitIDs(t *testing.T) {
	link := &PersonDogLink{PersonID: 7, DogID: 9}
	link.ResolveKeys()
	if link.PersonID != 7 || link.DogID != 9 {
		t.Errorf("Keys mismatch: got (%d, %d), want (7, 9)", link.PersonID, link.DogID)
	}
}

func TestStringer(t *testing.T) {
	if got := NewPerson("Dr Charles The Vet").String(); got != "Dr Charles The Vet" {
		t.Errorf("Person.String() = %q", got)
	}
	if got := NewDog("Fido").String(); got != "Fido" {
		t.Errorf("Dog.String() = %q", got)
	}
}
