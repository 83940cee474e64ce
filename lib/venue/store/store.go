package venuestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	venueapimodels "sailing-venues-backend/models/api/venue"
	dbmodels "sailing-venues-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.Venue) error
	BatchUpsert(list []dbmodels.Venue) error
	GetByID(id string) (*dbmodels.Venue, error)
	List(filter venueapimodels.VenueFindRequest) ([]dbmodels.Venue, int64, error)
	ListAll() ([]dbmodels.Venue, error)
	Count() (int64, error)
	CountVerified() (int64, error)
	CountByCountry() (map[string]int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// onConflictCoordsOnly is the documented lifecycle of a venue row:
// insert once, and on re-import refresh only the coordinate pair.
// Every other column keeps its first-insert value.
var onConflictCoordsOnly = clause.OnConflict{
	Columns:   []clause.Column{{Name: "id"}},
	DoUpdates: clause.AssignmentColumns([]string{"coordinates_lat", "coordinates_lng"}),
}

func (i impl) Upsert(rec dbmodels.Venue) error {
	err := i.db.Clauses(onConflictCoordsOnly).Create(&rec).Error
	if err != nil {
		return errors.Wrap(err, "venue upsert failed")
	}
	return nil
}

const batchSize = 500

// BatchUpsert applies the list with last-write-wins semantics for a
// recurring id, matching what sequential per-row statements would leave
// behind. A single multi-row INSERT cannot touch the same conflict row
// twice, so recurring ids are folded to their last occurrence first.
func (i impl) BatchUpsert(list []dbmodels.Venue) error {
	list = foldLastWins(list)
	if len(list) == 0 {
		return nil
	}
	err := i.db.Clauses(onConflictCoordsOnly).CreateInBatches(list, batchSize).Error
	if err != nil {
		return errors.Wrap(err, "venue batch upsert failed")
	}
	return nil
}

// foldLastWins keeps one row per id, the last one listed, at the position
// of the first occurrence.
func foldLastWins(list []dbmodels.Venue) []dbmodels.Venue {
	index := make(map[string]int, len(list))
	result := make([]dbmodels.Venue, 0, len(list))
	for _, rec := range list {
		if k, ok := index[rec.ID]; ok {
			result[k] = rec
			continue
		}
		index[rec.ID] = len(result)
		result = append(result, rec)
	}
	return result
}

func (i impl) GetByID(id string) (*dbmodels.Venue, error) {
	rec := dbmodels.Venue{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "venue fetch failed")
	}
	return &rec, nil
}

func (i impl) List(filter venueapimodels.VenueFindRequest) ([]dbmodels.Venue, int64, error) {
	tx := i.db.Model(dbmodels.Venue{})
	if filter.Name != "" {
		tx.Where("LOWER(name) like ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Country != "" {
		tx.Where("country = ?", filter.Country)
	}
	if filter.Region != "" {
		tx.Where("region = ?", filter.Region)
	}
	if filter.VenueType != "" {
		tx.Where("venue_type = ?", filter.VenueType)
	}
	if filter.Verified != nil {
		tx.Where("verified = ?", *filter.Verified)
	}
	if filter.BBox != nil {
		tx.Where("coordinates_lat BETWEEN ? AND ?", filter.BBox.MinLat, filter.BBox.MaxLat)
		tx.Where("coordinates_lng BETWEEN ? AND ?", filter.BBox.MinLng, filter.BBox.MaxLng)
	}
	var rowCount int64
	if err := tx.Count(&rowCount).Error; err != nil {
		return nil, 0, errors.Wrap(err, "venue count failed")
	}
	page, limit := filter.GetPage()
	var result []dbmodels.Venue
	err := tx.
		Order("id").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&result).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "venue list failed")
	}
	return result, rowCount, nil
}

func (i impl) ListAll() ([]dbmodels.Venue, error) {
	var result []dbmodels.Venue
	err := i.db.
		Model(dbmodels.Venue{}).
		Order("id").
		Find(&result).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "venue list failed")
	}
	return result, nil
}

func (i impl) Count() (int64, error) {
	var rowCount int64
	err := i.db.Model(dbmodels.Venue{}).Count(&rowCount).Error
	if err != nil {
		return 0, errors.Wrap(err, "venue count failed")
	}
	return rowCount, nil
}

func (i impl) CountVerified() (int64, error) {
	var rowCount int64
	err := i.db.Model(dbmodels.Venue{}).Where("verified = true").Count(&rowCount).Error
	if err != nil {
		return 0, errors.Wrap(err, "venue count failed")
	}
	return rowCount, nil
}

func (i impl) CountByCountry() (map[string]int64, error) {
	type row struct {
		Country  string
		RowCount int64
	}
	var rows []row
	err := i.db.
		Model(dbmodels.Venue{}).
		Select("country, count(*) as row_count").
		Group("country").
		Find(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "venue country stats failed")
	}
	result := make(map[string]int64, len(rows))
	for _, r := range rows {
		result[r.Country] = r.RowCount
	}
	return result, nil
}
