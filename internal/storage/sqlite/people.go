package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/petlinks/internal/models"
)

// GetPerson retrieves a person by ID.
func (s *SQLiteStore) GetPerson(ctx context.Context, id int64) (*models.Person, error) {
	query := "SELECT id, name FROM person WHERE id = ?"
	echo(ctx, query, []any{id})

	person := &models.Person{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(&person.ID, &person.Name)
	if err != nil {
		return nil, notFound(err, "person", id)
	}

	return person, nil
}

// OwnersOf returns the people linked to dog as owners.
// A dog that was never saved has ID 0 and matches no links.
func (s *SQLiteStore) OwnersOf(ctx context.Context, dog *models.Dog) ([]*models.Person, error) {
	query := `
		SELECT person.id, person.name
		FROM person
		JOIN persondoglink ON person.id = persondoglink.person_id
		WHERE persondoglink.dog_id = ? AND persondoglink.is_owner = TRUE
	`
	echo(ctx, query, []any{dog.ID})

	rows, err := s.db.QueryContext(ctx, query, dog.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query owners of dog %d: %w", dog.ID, err)
	}
	defer rows.Close()

	owners := make([]*models.Person, 0)
	for rows.Next() {
		person := &models.Person{}
		if err := rows.Scan(&person.ID, &person.Name); err != nil {
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate owners: %w", err)
	}

	return owners, nil
}
