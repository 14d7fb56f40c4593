package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/petlinks/internal/models"
)

const linkColumns = "person_id, dog_id, is_owner"

// GetLink retrieves the link between a person and a dog.
func (s *SQLiteStore) GetLink(ctx context.Context, personID, dogID int64) (*models.PersonDogLink, error) {
	query := "SELECT " + linkColumns + " FROM persondoglink WHERE person_id = ? AND dog_id = ?"
	echo(ctx, query, []any{personID, dogID})

	link := &models.PersonDogLink{}
	err := s.db.QueryRowContext(ctx, query, personID, dogID).Scan(&link.PersonID, &link.DogID, &link.IsOwner)
	if err != nil {
		return nil, notFound(err, "link", personID, dogID)
	}

	return link, nil
}

// LinksForPerson returns all links of a person, ordered by dog ID.
func (s *SQLiteStore) LinksForPerson(ctx context.Context, personID int64) ([]*models.PersonDogLink, error) {
	return s.queryLinks(ctx,
		"SELECT "+linkColumns+" FROM persondoglink WHERE person_id = ? ORDER BY dog_id",
		personID,
	)
}

// LinksForDog returns all links of a dog, ordered by person ID.
func (s *SQLiteStore) LinksForDog(ctx context.Context, dogID int64) ([]*models.PersonDogLink, error) {
	return s.queryLinks(ctx,
		"SELECT "+linkColumns+" FROM persondoglink WHERE dog_id = ? ORDER BY person_id",
		dogID,
	)
}

func (s *SQLiteStore) queryLinks(ctx context.Context, query string, args ...any) ([]*models.PersonDogLink, error) {
	echo(ctx, query, args)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	links := make([]*models.PersonDogLink, 0)
	for rows.Next() {
		link := &models.PersonDogLink{}
		if err := rows.Scan(&link.PersonID, &link.DogID, &link.IsOwner); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate links: %w", err)
	}

	return links, nil
}
