package sqlite

import (
	"errors"

	sqlitedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mmynk/petlinks/internal/storage"
)

// classify maps SQLite constraint failures on table to storage.ErrConstraint.
// Other errors are returned unchanged.
func classify(table string, err error) error {
	var sqliteErr *sqlitedriver.Error
	// Extended result codes keep the primary code in the low byte.
	if errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return &storage.ConstraintError{Table: table, Err: err}
	}
	return err
}
