package migration

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-pacing-api/db/migrations"
)

// Run aplica as migrações embutidas até a versão alvo. A DSN deve estar no
// formato aceito pelo driver postgres do golang-migrate.
func Run(dsn string) error {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, dsn)
	if err != nil {
		return err
	}
	defer mg.Close()

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("banco de dados em estado dirty, intervenção manual necessária")
	}

	if err = mg.Migrate(migrations.Version); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.WithField("version", version).Info("Schema já está na versão alvo")
			return nil
		}
		return err
	}

	logrus.WithField("version", migrations.Version).Info("Migrações aplicadas com sucesso")
	return nil
}
