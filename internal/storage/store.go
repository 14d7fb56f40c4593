// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/petlinks/internal/models"
)

// Store defines the interface for person, dog and link storage.
// This abstraction keeps the service and CLI independent of the SQL engine.
type Store interface {
	// CreateSchema creates the person, dog and persondoglink tables if they
	// do not exist yet.
	CreateSchema(ctx context.Context) error

	// SaveAll persists records in a single unit of work. People and dogs are
	// inserted before links, so a link may reference a person or dog saved in
	// the same call. Assigned IDs are written back into the records.
	// Returns an error wrapping ErrConstraint if a link duplicates an existing
	// (person, dog) pair or references a missing person or dog. Nothing is
	// persisted when an error is returned.
	SaveAll(ctx context.Context, records ...models.Record) error

	// GetPerson retrieves a person by ID.
	GetPerson(ctx context.Context, id int64) (*models.Person, error)

	// GetDog retrieves a dog by ID.
	GetDog(ctx context.Context, id int64) (*models.Dog, error)

	// GetLink retrieves the link between a person and a dog.
	GetLink(ctx context.Context, personID, dogID int64) (*models.PersonDogLink, error)

	// OwnersOf returns the people linked to dog with IsOwner set.
	// The result is never nil and has no defined order.
	// dog must already be persisted.
	OwnersOf(ctx context.Context, dog *models.Dog) ([]*models.Person, error)

	// LinksForPerson returns every link of the given person.
	LinksForPerson(ctx context.Context, personID int64) ([]*models.PersonDogLink, error)

	// LinksForDog returns every link of the given dog.
	LinksForDog(ctx context.Context, dogID int64) ([]*models.PersonDogLink, error)

	// Close releases any resources held by the store.
	Close() error
}
