package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "sailing-venues-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Venue{}); err != nil {
		return errors.Wrap(err, "Venue migration failed")
	}
	if err := DB.AutoMigrate(&dbmodels.QualityReport{}); err != nil {
		return errors.Wrap(err, "QualityReport migration failed")
	}
	if err := DB.AutoMigrate(&dbmodels.ExportFile{}); err != nil {
		return errors.Wrap(err, "ExportFile migration failed")
	}
	log.Info("migrations finished")
	return nil
}
