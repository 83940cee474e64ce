// Package dataquality runs the dataset checks against the live table and
// persists the findings. Checks report only; venue rows are never rewritten.
package dataquality

import (
	log "github.com/sirupsen/logrus"

	"sailing-venues-backend/db"
	qualitychecks "sailing-venues-backend/lib/dataquality/checks"
	qualitystore "sailing-venues-backend/lib/dataquality/store"
	"sailing-venues-backend/lib/metrics"
	initchecker "sailing-venues-backend/lib/utils/init-checker"
	venuestore "sailing-venues-backend/lib/venue/store"
	venueapimodels "sailing-venues-backend/models/api/venue"
	dbmodels "sailing-venues-backend/models/db"
)

type Provider interface {
	Run() (venueapimodels.QualityReportView, error)
	Latest() (*venueapimodels.QualityReportView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		venueStore: venuestore.NewInstance(db.DB),
		store:      qualitystore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"venueStore", instance.venueStore,
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	venueStore venuestore.Provider
	store      qualitystore.Provider
}

func (i impl) Run() (venueapimodels.QualityReportView, error) {
	list, err := i.venueStore.ListAll()
	if err != nil {
		return venueapimodels.QualityReportView{}, err
	}
	result := qualitychecks.CheckAll(list)
	rec := dbmodels.QualityReport{
		CheckedCount:    result.CheckedCount,
		DuplicateIDs:    result.DuplicateIDs,
		IDMismatchIDs:   result.IDMismatchIDs,
		OutOfRangeIDs:   result.OutOfRangeIDs,
		MojibakeIDs:     result.MojibakeIDs,
		UnknownPlaceIDs: result.UnknownPlaceIDs,
	}
	id, err := i.store.Save(rec)
	if err != nil {
		return venueapimodels.QualityReportView{}, err
	}
	rec.ID = id
	publishMetrics(result)
	log.
		WithField("checked", result.CheckedCount).
		WithField("issues", result.IssueCount()).
		Info("data quality run finished")
	return venueapimodels.QualityReportConvert(rec), nil
}

// Latest returns nil without an error before the first run: an empty
// history is an expected state, not a failure.
func (i impl) Latest() (*venueapimodels.QualityReportView, error) {
	rec, err := i.store.GetLatest()
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := venueapimodels.QualityReportConvert(*rec)
	return &view, nil
}

func publishMetrics(result qualitychecks.Result) {
	metrics.QualityIssues.WithLabelValues("duplicate_id").Set(float64(len(result.DuplicateIDs)))
	metrics.QualityIssues.WithLabelValues("id_mismatch").Set(float64(len(result.IDMismatchIDs)))
	metrics.QualityIssues.WithLabelValues("out_of_range").Set(float64(len(result.OutOfRangeIDs)))
	metrics.QualityIssues.WithLabelValues("mojibake").Set(float64(len(result.MojibakeIDs)))
	metrics.QualityIssues.WithLabelValues("unknown_place").Set(float64(len(result.UnknownPlaceIDs)))
}
