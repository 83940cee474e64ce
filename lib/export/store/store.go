package exportstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "sailing-venues-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.ExportFile) (id string, err error)
	List() ([]dbmodels.ExportFile, error)
	GetByID(id string) (*dbmodels.ExportFile, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.ExportFile) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "export metadata save failed")
	}
	return rec.ID, nil
}

func (i impl) List() ([]dbmodels.ExportFile, error) {
	var result []dbmodels.ExportFile
	err := i.db.
		Model(dbmodels.ExportFile{}).
		Order("created_at desc").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "export metadata list failed")
	}
	return result, nil
}

func (i impl) GetByID(id string) (*dbmodels.ExportFile, error) {
	rec := dbmodels.ExportFile{BaseModel: dbmodels.BaseModel{ID: id}}
	err := i.db.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "export metadata fetch failed")
	}
	return &rec, nil
}
