package sqlite

import (
	"context"
	"database/sql"
)

// schema contains the SQL statements to set up the database schema.
// person and dog must be created BEFORE persondoglink due to its foreign keys.
const schema = `
CREATE TABLE IF NOT EXISTS person (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS dog (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS persondoglink (
    person_id INTEGER NOT NULL,
    dog_id INTEGER NOT NULL,
    is_owner BOOLEAN NOT NULL DEFAULT 0,
    PRIMARY KEY (person_id, dog_id),
    FOREIGN KEY (person_id) REFERENCES person(id),
    FOREIGN KEY (dog_id) REFERENCES dog(id)
);

CREATE INDEX IF NOT EXISTS idx_person_name ON person(name);
CREATE INDEX IF NOT EXISTS idx_dog_name ON dog(name);
CREATE INDEX IF NOT EXISTS idx_persondoglink_dog_id ON persondoglink(dog_id);
`

// runMigrations executes the schema setup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	echo(ctx, schema, nil)
	_, err := db.ExecContext(ctx, schema)
	return err
}
