package qualitystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "sailing-venues-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.QualityReport) (id string, err error)
	GetLatest() (*dbmodels.QualityReport, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.QualityReport) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "quality report save failed")
	}
	return rec.ID, nil
}

func (i impl) GetLatest() (*dbmodels.QualityReport, error) {
	rec := dbmodels.QualityReport{}
	err := i.db.
		Order("created_at desc").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "quality report fetch failed")
	}
	return &rec, nil
}
