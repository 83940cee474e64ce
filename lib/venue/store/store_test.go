package venuestore

import (
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "sailing-venues-backend/models/db"
)

func TestFoldLastWins(t *testing.T) {
	rec := func(id string, lat, lng float64) dbmodels.Venue {
		return dbmodels.Venue{ID: id, CoordinatesLat: lat, CoordinatesLng: lng}
	}

	t.Run(`recurring id keeps last row check`, func(t *testing.T) {
		list := foldLastWins([]dbmodels.Venue{
			rec("osm-way-1", 1.0, 1.0),
			rec("osm-node-2", 2.0, 2.0),
			rec("osm-way-1", 9.0, 9.0),
		})
		require.Equal(t, 2, len(list))
		require.Equal(t, "osm-way-1", list[0].ID)
		require.Equal(t, 9.0, list[0].CoordinatesLat)
		require.Equal(t, 9.0, list[0].CoordinatesLng)
		require.Equal(t, "osm-node-2", list[1].ID)
	})

	t.Run(`unique list unchanged check`, func(t *testing.T) {
		in := []dbmodels.Venue{
			rec("osm-way-1", 1.0, 1.0),
			rec("osm-node-2", 2.0, 2.0),
		}
		require.Equal(t, in, foldLastWins(in))
	})

	t.Run(`empty list check`, func(t *testing.T) {
		require.Empty(t, foldLastWins(nil))
	})
}
