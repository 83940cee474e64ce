package qualitychecks

import (
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "sailing-venues-backend/models/db"
)

func venue(osmType, osmID, name string, lat, lng float64) dbmodels.Venue {
	return dbmodels.Venue{
		ID:             dbmodels.VenueID(osmType, osmID),
		Name:           name,
		CoordinatesLat: lat,
		CoordinatesLng: lng,
		Country:        "United States",
		Region:         "MD",
		VenueType:      "regional",
		TimeZone:       "UTC",
		DataQuality:    "osm",
		OsmID:          osmID,
		OsmType:        osmType,
		DataSource:     "osm",
	}
}

func TestChecker(t *testing.T) {
	t.Run(`clean dataset check`, func(t *testing.T) {
		list := []dbmodels.Venue{
			venue("way", "1043631461", "Hopewell Pointe Marina", 39.3133659, -76.4381609),
			venue("node", "42", "Rock Hall Yacht Club", 39.13, -76.24),
		}
		result := CheckAll(list)
		require.Equal(t, int64(2), result.CheckedCount)
		require.Equal(t, 0, result.IssueCount())
		require.Empty(t, result.UnknownPlaceIDs)
	})

	t.Run(`duplicate id check`, func(t *testing.T) {
		list := []dbmodels.Venue{
			venue("way", "1", "A", 1, 1),
			venue("way", "1", "B", 2, 2),
		}
		result := CheckAll(list)
		require.Equal(t, []string{"osm-way-1"}, result.DuplicateIDs)
	})

	t.Run(`id derivation check`, func(t *testing.T) {
		rec := venue("way", "7", "A", 1, 1)
		rec.ID = "osm-node-7"
		result := CheckAll([]dbmodels.Venue{rec})
		require.Equal(t, []string{"osm-node-7"}, result.IDMismatchIDs)
	})

	t.Run(`coordinate bounds check`, func(t *testing.T) {
		require.True(t, ValidCoords(90, 180))
		require.True(t, ValidCoords(-90, -180))
		require.False(t, ValidCoords(90.0001, 0))
		require.False(t, ValidCoords(0, -180.5))

		result := CheckAll([]dbmodels.Venue{venue("node", "9", "A", 95, 10)})
		require.Equal(t, []string{"osm-node-9"}, result.OutOfRangeIDs)
	})

	t.Run(`unknown place check`, func(t *testing.T) {
		rec := venue("way", "3", "A", 1, 1)
		rec.Country = "Unknown"
		rec.Region = "Unknown"
		result := CheckAll([]dbmodels.Venue{rec})
		require.Equal(t, []string{"osm-way-3"}, result.UnknownPlaceIDs)
		// unknown country/region is flagged but not counted as a defect
		require.Equal(t, 0, result.IssueCount())
	})
}

func TestMojibakeDetection(t *testing.T) {
	t.Run(`corrupted names are flagged`, func(t *testing.T) {
		for _, name := range []string{
			"Baie-d'Urf√© Yacht Club",
			"Gardiner‚Äôs Bay",
			"San Crist√≥bal",
			"Club NÃ¡utico",
			"Marina â€“ East Dock",
		} {
			require.True(t, HasMojibake(name), name)
		}
	})

	t.Run(`clean names pass`, func(t *testing.T) {
		for _, name := range []string{
			"Hopewell Pointe Marina",
			"Baie-d'Urfé Yacht Club",
			"Club Náutico de San Cristóbal",
			"Segelclub Müggelsee",
			"Yacht Club de l'Odet",
		} {
			require.False(t, HasMojibake(name), name)
		}
	})

	t.Run(`detection never rewrites the name`, func(t *testing.T) {
		rec := venue("way", "5", "Gardiner‚Äôs Bay", 41.0, -72.1)
		result := CheckAll([]dbmodels.Venue{rec})
		require.Equal(t, []string{"osm-way-5"}, result.MojibakeIDs)
		require.Equal(t, "Gardiner‚Äôs Bay", rec.Name)
	})
}
