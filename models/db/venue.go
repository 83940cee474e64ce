package dbmodels

import (
	"fmt"
	"time"
)

// Venue is a sailing venue sourced from an OpenStreetMap extract.
// The table is the one the generated dump targets, so column names are fixed.
type Venue struct {
	ID             string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Name           string    `gorm:"index;type:text" json:"name"`
	CoordinatesLat float64   `gorm:"column:coordinates_lat" json:"coordinates_lat"`
	CoordinatesLng float64   `gorm:"column:coordinates_lng" json:"coordinates_lng"`
	Country        string    `gorm:"index;type:varchar(100)" json:"country"`
	Region         string    `gorm:"type:varchar(100)" json:"region"`
	VenueType      string    `gorm:"type:varchar(50)" json:"venue_type"`
	TimeZone       string    `gorm:"type:varchar(50)" json:"time_zone"`
	DataQuality    string    `gorm:"type:varchar(20)" json:"data_quality"`
	OsmID          string    `gorm:"column:osm_id;type:varchar(30)" json:"osm_id"`
	OsmType        string    `gorm:"column:osm_type;type:varchar(10)" json:"osm_type"`
	DataSource     string    `gorm:"type:varchar(20)" json:"data_source"`
	Verified       bool      `json:"verified"`
}

func (Venue) TableName() string {
	return "sailing_venues"
}

// VenueID derives the primary key from the OSM provenance pair.
// Every row keeps id == osm-<osm_type>-<osm_id>.
func VenueID(osmType, osmID string) string {
	return fmt.Sprintf("osm-%v-%v", osmType, osmID)
}

func (v Venue) ExpectedID() string {
	return VenueID(v.OsmType, v.OsmID)
}
