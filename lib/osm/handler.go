// Package osmrefresh implements the venue re-import lifecycle: rows are
// created once by the dump load, and periodic runs refresh only the
// coordinate pair from current OSM data. Nothing is ever deleted and no
// other column is revised.
package osmrefresh

import (
	"context"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"sailing-venues-backend/config"
	"sailing-venues-backend/db"
	"sailing-venues-backend/lib/metrics"
	osmclient "sailing-venues-backend/lib/osm/client"
	"sailing-venues-backend/lib/utils/helpers"
	initchecker "sailing-venues-backend/lib/utils/init-checker"
	venuestore "sailing-venues-backend/lib/venue/store"
	"sailing-venues-backend/models"
	dbmodels "sailing-venues-backend/models/db"
)

type RefreshResult struct {
	Checked   int `json:"checked"`
	Refreshed int `json:"refreshed"`
	Missing   int `json:"missing"`
	Skipped   int `json:"skipped"`
}

type Provider interface {
	RefreshCoordinates(ctx context.Context) (RefreshResult, error)
}

var Instance Provider

func NewHandler() {
	instance := &impl{
		store:       venuestore.NewInstance(db.DB),
		client:      osmclient.Instance,
		chunkSize:   config.Conf.Osm.ChunkSize,
		parallelism: config.Conf.Osm.ChunkParallelism,
		timeoutSec:  config.Conf.Osm.QueryTimeoutSec,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"client", instance.client,
	)
	Instance = instance
}

type impl struct {
	store       venuestore.Provider
	client      osmclient.Provider
	chunkSize   int
	parallelism int
	timeoutSec  int
}

func (i *impl) RefreshCoordinates(ctx context.Context) (RefreshResult, error) {
	list, err := i.store.ListAll()
	if err != nil {
		return RefreshResult{}, err
	}
	result := RefreshResult{Checked: len(list)}

	byType := make(map[models.OsmType][]dbmodels.Venue)
	for _, rec := range list {
		osmType := models.OsmType(rec.OsmType)
		if !osmType.Valid() || rec.OsmID == "" {
			result.Skipped++
			log.
				WithField("venue_id", rec.ID).
				WithField("osm_type", rec.OsmType).
				Debug("venue without usable OSM provenance skipped")
			continue
		}
		byType[osmType] = append(byType[osmType], rec)
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.parallelism)
	for osmType, recs := range byType {
		for _, chunk := range chunks(recs, i.chunkSize) {
			osmType, chunk := osmType, chunk
			g.Go(func() error {
				if helpers.IsContextDone(gctx) {
					return gctx.Err()
				}
				refreshed, missing, err := i.refreshChunk(gctx, osmType, chunk)
				if err != nil {
					return err
				}
				mu.Lock()
				result.Refreshed += refreshed
				result.Missing += missing
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return result, errors.Wrap(err, "coordinate refresh failed")
	}
	metrics.RefreshedCoordinatesTotal.Add(float64(result.Refreshed))
	return result, nil
}

func (i *impl) refreshChunk(ctx context.Context, osmType models.OsmType, chunk []dbmodels.Venue) (refreshed, missing int, err error) {
	ids := make([]string, 0, len(chunk))
	for _, rec := range chunk {
		ids = append(ids, rec.OsmID)
	}
	elements, err := i.client.FetchElements(ctx, osmclient.BuildIDQuery(osmType, ids, i.timeoutSec))
	if err != nil {
		return 0, 0, err
	}
	positions := make(map[string]osmclient.Element, len(elements))
	for _, el := range elements {
		positions[dbmodels.VenueID(el.Type, formatID(el.ID))] = el
	}

	var changed []dbmodels.Venue
	for _, rec := range chunk {
		el, ok := positions[rec.ID]
		if !ok {
			missing++
			log.WithField("venue_id", rec.ID).Debug("OSM element not found, coordinates kept")
			continue
		}
		lat, lng, ok := el.Position()
		if !ok {
			missing++
			continue
		}
		if lat == rec.CoordinatesLat && lng == rec.CoordinatesLng {
			continue
		}
		rec.CoordinatesLat = lat
		rec.CoordinatesLng = lng
		changed = append(changed, rec)
	}
	if len(changed) > 0 {
		// the conflict clause guarantees only the coordinate pair changes
		if err = i.store.BatchUpsert(changed); err != nil {
			return 0, missing, err
		}
		metrics.VenueUpsertsTotal.WithLabelValues("refresh").Add(float64(len(changed)))
	}
	return len(changed), missing, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func chunks(list []dbmodels.Venue, size int) [][]dbmodels.Venue {
	if size <= 0 {
		size = 100
	}
	var result [][]dbmodels.Venue
	for len(list) > size {
		result = append(result, list[:size])
		list = list[size:]
	}
	if len(list) > 0 {
		result = append(result, list)
	}
	return result
}
