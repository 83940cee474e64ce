package osmclient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sailing-venues-backend/models"
)

func TestBuildIDQuery(t *testing.T) {
	t.Run(`way query check`, func(t *testing.T) {
		q := BuildIDQuery(models.OsmTypeWay, []string{"1043631461", "555"}, 25)
		require.Equal(t, "[out:json][timeout:25];way(id:1043631461,555);out center;", q)
	})

	t.Run(`node query with default timeout check`, func(t *testing.T) {
		q := BuildIDQuery(models.OsmTypeNode, []string{"42"}, 0)
		require.Equal(t, "[out:json][timeout:25];node(id:42);out center;", q)
	})
}

func coord(v float64) *float64 {
	return &v
}

func TestElementPosition(t *testing.T) {
	t.Run(`node position check`, func(t *testing.T) {
		lat, lng, ok := Element{Type: "node", ID: 42, Lat: coord(39.31), Lon: coord(-76.43)}.Position()
		require.True(t, ok)
		require.Equal(t, 39.31, lat)
		require.Equal(t, -76.43, lng)
	})

	t.Run(`node at null island check`, func(t *testing.T) {
		lat, lng, ok := Element{Type: "node", ID: 42, Lat: coord(0), Lon: coord(0)}.Position()
		require.True(t, ok)
		require.Equal(t, 0.0, lat)
		require.Equal(t, 0.0, lng)
	})

	t.Run(`way center position check`, func(t *testing.T) {
		lat, lng, ok := Element{Type: "way", ID: 7, Center: &Center{Lat: 1.5, Lon: 2.5}}.Position()
		require.True(t, ok)
		require.Equal(t, 1.5, lat)
		require.Equal(t, 2.5, lng)
	})

	t.Run(`missing position check`, func(t *testing.T) {
		_, _, ok := Element{Type: "way", ID: 7}.Position()
		require.False(t, ok)
	})
}
