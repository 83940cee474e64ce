package venueprovider

import (
	"io"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"sailing-venues-backend/db"
	"sailing-venues-backend/lib/dump"
	"sailing-venues-backend/lib/metrics"
	initchecker "sailing-venues-backend/lib/utils/init-checker"
	venuestore "sailing-venues-backend/lib/venue/store"
	"sailing-venues-backend/models"
	venueapimodels "sailing-venues-backend/models/api/venue"
)

type Provider interface {
	Get(id string) (venueapimodels.VenueView, error)
	Find(request venueapimodels.VenueFindRequest) (list []venueapimodels.VenueView, rowCount int64, err error)
	Stats() (venueapimodels.VenueStatsView, error)
	ApplyDump(r io.Reader) (applied int, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: venuestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store venuestore.Provider
}

func (i impl) Get(id string) (venueapimodels.VenueView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return venueapimodels.VenueView{}, err
	}
	if rec == nil {
		return venueapimodels.VenueView{}, errors.New("venue not found")
	}
	return venueapimodels.VenueConvert(*rec), nil
}

func (i impl) Find(request venueapimodels.VenueFindRequest) (list []venueapimodels.VenueView, rowCount int64, err error) {
	if err = request.Validate(); err != nil {
		return nil, 0, err
	}
	recList, rowCount, err := i.store.List(request)
	if err != nil {
		return nil, 0, err
	}
	result := make([]venueapimodels.VenueView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, venueapimodels.VenueConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Stats() (venueapimodels.VenueStatsView, error) {
	total, err := i.store.Count()
	if err != nil {
		return venueapimodels.VenueStatsView{}, err
	}
	verified, err := i.store.CountVerified()
	if err != nil {
		return venueapimodels.VenueStatsView{}, err
	}
	byCountry, err := i.store.CountByCountry()
	if err != nil {
		return venueapimodels.VenueStatsView{}, err
	}
	return venueapimodels.VenueStatsView{
		Total:        total,
		Verified:     verified,
		ByCountry:    byCountry,
		UnknownPlace: byCountry[models.UnknownPlace],
	}, nil
}

// ApplyDump parses an upsert dump and applies it through the
// coordinates-only conflict clause. Re-applying the same dump leaves
// the table observably unchanged.
func (i impl) ApplyDump(r io.Reader) (applied int, err error) {
	started := time.Now()
	list, err := dump.Parse(r)
	if err != nil {
		return 0, errors.Wrap(err, "dump parse failed")
	}
	if err = i.store.BatchUpsert(list); err != nil {
		return 0, err
	}
	metrics.VenueUpsertsTotal.WithLabelValues("dump").Add(float64(len(list)))
	metrics.DumpApplyDuration.Observe(time.Since(started).Seconds())
	if total, err := i.store.Count(); err == nil {
		metrics.VenueCount.Set(float64(total))
	}
	log.WithField("venues", len(list)).Info("venue dump applied")
	return len(list), nil
}
