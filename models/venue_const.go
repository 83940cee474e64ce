package models

type OsmType string

const (
	OsmTypeNode     OsmType = "node"
	OsmTypeWay      OsmType = "way"
	OsmTypeRelation OsmType = "relation"
)

func (t OsmType) Valid() bool {
	switch t {
	case OsmTypeNode, OsmTypeWay, OsmTypeRelation:
		return true
	}
	return false
}

type VenueType string

const (
	VenueTypeRegional VenueType = "regional"
)

const (
	DataSourceOsm  = "osm"
	DataQualityOsm = "osm"

	// DefaultTimeZone is what the upstream extract writes for every venue;
	// per-location time zone resolution is explicitly not performed.
	DefaultTimeZone = "UTC"

	UnknownPlace = "Unknown"
)
