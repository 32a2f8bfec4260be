package db

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"fundraise-ledger/db/migrations"
)

var ErrDirtySchema = errors.New("ledger schema is in dirty state")

// Migrate brings the ledger schema at addr to migrations.Version using the
// SQL files embedded in db/migrations and returns the version it started
// from (0 for an empty database). A dirty schema is reported, not forced.
func Migrate(addr string) (uint, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, err
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", redact(addr), err)
	}
	defer mg.Close()

	from, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	}
	if dirty {
		return from, fmt.Errorf("%w at version %d", ErrDirtySchema, from)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, err
	}
	return from, nil
}

// redact hides the password of a connection URL for error messages.
func redact(addr string) string {
	u, err := url.Parse(addr)
	if err != nil {
		return "database"
	}
	return u.Redacted()
}
