// Package migrations aplica o schema embutido usando golang-migrate
package migrations

import (
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed *.sql
var fs embed.FS

// Version é a última versão de schema conhecida por esta build
const Version = 1

var ErrDirtyDatabase = errors.New("database is in dirty state")

// Migrate aplica todas as migrations pendentes até Version
func Migrate(dsn string) error {
	driver, err := iofs.New(fs, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, dsn)
	if err != nil {
		return err
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return ErrDirtyDatabase
	}

	if err = mg.Migrate(Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"from_version": current,
		"to_version":   Version,
	}).Info("Migrations aplicadas")

	return nil
}
