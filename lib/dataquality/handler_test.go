package dataquality

import (
	"testing"

	"github.com/stretchr/testify/require"

	dbmodels "sailing-venues-backend/models/db"
)

type stubQualityStore struct {
	latest *dbmodels.QualityReport
}

func (s stubQualityStore) Save(rec dbmodels.QualityReport) (string, error) {
	return "report-1", nil
}

func (s stubQualityStore) GetLatest() (*dbmodels.QualityReport, error) {
	return s.latest, nil
}

func TestLatest(t *testing.T) {
	t.Run(`no report yet check`, func(t *testing.T) {
		i := impl{store: stubQualityStore{}}
		view, err := i.Latest()
		require.Nil(t, err)
		require.Nil(t, view)
	})

	t.Run(`latest report check`, func(t *testing.T) {
		rec := &dbmodels.QualityReport{
			CheckedCount: 3,
			MojibakeIDs:  []string{"osm-way-5"},
		}
		rec.ID = "report-1"
		i := impl{store: stubQualityStore{latest: rec}}
		view, err := i.Latest()
		require.Nil(t, err)
		require.NotNil(t, view)
		require.Equal(t, "report-1", view.ID)
		require.Equal(t, int64(3), view.CheckedCount)
		require.Equal(t, []string{"osm-way-5"}, view.MojibakeIDs)
	})
}
