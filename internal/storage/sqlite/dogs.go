package sqlite

import (
	"context"

	"github.com/mmynk/petlinks/internal/models"
)

// GetDog retrieves a dog by ID.
func (s *SQLiteStore) GetDog(ctx context.Context, id int64) (*models.Dog, error) {
	query := "SELECT id, name FROM dog WHERE id = ?"
	echo(ctx, query, []any{id})

	dog := &models.Dog{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(&dog.ID, &dog.Name)
	if err != nil {
		return nil, notFound(err, "dog", id)
	}

	return dog, nil
}
