// Package models defines the core domain models for petlinks.
//
// # Models
//
//   - Person: someone who may be related to one or more dogs
//   - Dog: a dog that may be related to one or more people
//   - PersonDogLink: the association between a person and a dog, carrying
//     whether that person is an owner of the dog
//
// # Design Principles
//
// 1. **IDs come from storage**: a zero ID means the record is not persisted yet
// 2. **One source of truth**: links live only in the link table; a person's or
// a dog's links are read on demand through the store, never cached on the struct
// 3. **Relationship attributes stay on the link**: IsOwner belongs to the pair,
// so two links to the same dog can disagree
package models

// Record is implemented by every model that can be saved in a unit of work.
type Record interface {
	record()
}
