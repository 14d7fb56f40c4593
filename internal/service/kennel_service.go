package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mmynk/petlinks/internal/models"
	"github.com/mmynk/petlinks/internal/storage"
)

// KennelService exposes unit-of-work writes and the owner lookup on top of a store.
type KennelService struct {
	store storage.Store
}

// NewKennelService creates a new KennelService with the given storage backend.
func NewKennelService(store storage.Store) *KennelService {
	return &KennelService{store: store}
}

// Register saves records as one unit of work.
// Constraint violations are returned to the caller unchanged so it can retry
// with corrected data.
func (s *KennelService) Register(ctx context.Context, records ...models.Record) error {
	unitID := uuid.New().String()
	slog.Info("Unit of work started", "unit_id", unitID, "records", len(records))

	if err := s.store.SaveAll(ctx, records...); err != nil {
		if errors.Is(err, storage.ErrConstraint) {
			slog.Warn("Unit of work rejected", "unit_id", unitID, "error", err)
		} else {
			slog.Error("Unit of work failed", "unit_id", unitID, "error", err)
		}
		return err
	}

	slog.Info("Unit of work committed", "unit_id", unitID)
	return nil
}

// Dog retrieves a persisted dog by ID.
func (s *KennelService) Dog(ctx context.Context, id int64) (*models.Dog, error) {
	dog, err := s.store.GetDog(ctx, id)
	if err != nil {
		slog.Error("GetDog failed", "dog_id", id, "error", err)
		return nil, err
	}
	return dog, nil
}

// Owners returns the owners of dog.
func (s *KennelService) Owners(ctx context.Context, dog *models.Dog) ([]*models.Person, error) {
	slog.Debug("Owners lookup started", "dog_id", dog.ID, "dog", dog.Name)

	owners, err := s.store.OwnersOf(ctx, dog)
	if err != nil {
		slog.Error("Owners lookup failed", "dog_id", dog.ID, "error", err)
		return nil, err
	}

	slog.Info("Owners lookup completed", "dog_id", dog.ID, "count", len(owners))
	return owners, nil
}

// DogLinks returns every link of a dog.
func (s *KennelService) DogLinks(ctx context.Context, dogID int64) ([]*models.PersonDogLink, error) {
	return s.store.LinksForDog(ctx, dogID)
}

// PersonLinks returns every link of a person.
func (s *KennelService) PersonLinks(ctx context.Context, personID int64) ([]*models.PersonDogLink, error) {
	return s.store.LinksForPerson(ctx, personID)
}

// SeedDemo saves the sample household: Alice and Bob Smith own Fido,
// and Dr Charles The Vet is linked to Fido without being an owner.
func (s *KennelService) SeedDemo(ctx context.Context) (*models.Dog, error) {
	alice := models.NewPerson("Alice Smith")
	bob := models.NewPerson("Bob Smith")
	charles := models.NewPerson("Dr Charles The Vet")
	fido := models.NewDog("Fido")

	err := s.Register(ctx,
		alice, bob, charles, fido,
		models.NewLink(alice, fido, true),
		models.NewLink(bob, fido, true),
		models.NewLink(charles, fido, false),
	)
	if err != nil {
		return nil, err
	}

	return fido, nil
}

// Init creates the schema if it does not exist yet.
func (s *KennelService) Init(ctx context.Context) error {
	if err := s.store.CreateSchema(ctx); err != nil {
		slog.Error("CreateSchema failed", "error", err)
		return err
	}
	slog.Info("Schema ready")
	return nil
}
