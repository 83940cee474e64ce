package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "sailing-venues-backend/models/db"
)

const sampleStatement = `INSERT INTO sailing_venues (id, name, coordinates_lat, coordinates_lng, country, region, venue_type, time_zone, data_quality, osm_id, osm_type, data_source, verified) VALUES ('osm-way-1043631461', 'Hopewell Pointe Marina', 39.3133659, -76.4381609, 'Unknown', 'Unknown', 'regional', 'UTC', 'osm', '1043631461', 'way', 'osm', false) ON CONFLICT (id) DO UPDATE SET coordinates_lat = EXCLUDED.coordinates_lat, coordinates_lng = EXCLUDED.coordinates_lng;`

func TestDumpCodec(t *testing.T) {
	t.Run(`parse single statement check`, func(t *testing.T) {
		list, err := Parse(strings.NewReader(sampleStatement))
		require.Nil(t, err)
		require.Equal(t, 1, len(list))
		rec := list[0]
		require.Equal(t, "osm-way-1043631461", rec.ID)
		require.Equal(t, "Hopewell Pointe Marina", rec.Name)
		require.Equal(t, 39.3133659, rec.CoordinatesLat)
		require.Equal(t, -76.4381609, rec.CoordinatesLng)
		require.Equal(t, "Unknown", rec.Country)
		require.Equal(t, "regional", rec.VenueType)
		require.Equal(t, "UTC", rec.TimeZone)
		require.Equal(t, "osm", rec.DataQuality)
		require.Equal(t, "1043631461", rec.OsmID)
		require.Equal(t, "way", rec.OsmType)
		require.Equal(t, "osm", rec.DataSource)
		require.Equal(t, false, rec.Verified)
		require.Equal(t, rec.ExpectedID(), rec.ID)
	})

	t.Run(`parse escaped quote check`, func(t *testing.T) {
		stmt := strings.Replace(sampleStatement, "'Hopewell Pointe Marina'", "'Baie-d''Urfé Yacht Club'", 1)
		list, err := Parse(strings.NewReader(stmt))
		require.Nil(t, err)
		require.Equal(t, 1, len(list))
		require.Equal(t, "Baie-d'Urfé Yacht Club", list[0].Name)
	})

	t.Run(`parse multiple statements with comments check`, func(t *testing.T) {
		input := "-- generated venues\n" + sampleStatement + "\n\n" +
			strings.Replace(sampleStatement, "1043631461", "555", 2) + "\n"
		list, err := Parse(strings.NewReader(input))
		require.Nil(t, err)
		require.Equal(t, 2, len(list))
		require.Equal(t, "osm-way-555", list[1].ID)
	})

	t.Run(`render parse round trip check`, func(t *testing.T) {
		rec := dbmodels.Venue{
			ID:             dbmodels.VenueID("node", "42"),
			Name:           "Gardiner's Bay Sailing Club",
			CoordinatesLat: 41.078,
			CoordinatesLng: -72.1,
			Country:        "United States",
			Region:         "NY",
			VenueType:      "regional",
			TimeZone:       "UTC",
			DataQuality:    "osm",
			OsmID:          "42",
			OsmType:        "node",
			DataSource:     "osm",
		}
		buf := new(bytes.Buffer)
		err := Render(buf, []dbmodels.Venue{rec})
		require.Nil(t, err)
		require.Contains(t, buf.String(), "'Gardiner''s Bay Sailing Club'")
		require.Contains(t, buf.String(), "ON CONFLICT (id) DO UPDATE SET coordinates_lat = EXCLUDED.coordinates_lat, coordinates_lng = EXCLUDED.coordinates_lng;")

		parsed, err := Parse(buf)
		require.Nil(t, err)
		require.Equal(t, 1, len(parsed))
		// timestamps are not part of the dump format
		parsed[0].CreatedAt = rec.CreatedAt
		parsed[0].UpdatedAt = rec.UpdatedAt
		require.Equal(t, rec, parsed[0])
	})

	t.Run(`reject unknown conflict clause check`, func(t *testing.T) {
		stmt := strings.Replace(sampleStatement, "DO UPDATE SET coordinates_lat = EXCLUDED.coordinates_lat, coordinates_lng = EXCLUDED.coordinates_lng", "DO NOTHING", 1)
		_, err := Parse(strings.NewReader(stmt))
		require.NotNil(t, err)
	})

	t.Run(`reject unterminated literal check`, func(t *testing.T) {
		_, err := Parse(strings.NewReader("INSERT INTO sailing_venues (id) VALUES ('broken"))
		require.NotNil(t, err)
	})
}
