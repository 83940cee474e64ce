package db

import (
	"os"

	log "github.com/sirupsen/logrus"

	"sailing-venues-backend/config"
	qualitychecks "sailing-venues-backend/lib/dataquality/checks"
	"sailing-venues-backend/lib/dump"
	venuestore "sailing-venues-backend/lib/venue/store"
)

// fillVenues seeds the sailing_venues table from the generated upsert dump.
// The upsert semantics make re-running the seed a no-op, so the load is not
// gated on an empty table the way a plain insert seed would be.
func fillVenues() {
	log.Info("preloading venues")
	dumpPath := config.Conf.Preload.VenueDumpPath
	f, err := os.Open(dumpPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", dumpPath).Info("venue dump not found, preload skipped")
			return
		}
		log.WithError(err).Error("venue dump open failed")
		return
	}
	defer f.Close()

	list, err := dump.Parse(f)
	if err != nil {
		log.WithError(err).Error("venue dump parse failed")
		return
	}

	// report-only pass: corrupted or suspicious rows are loaded as-is
	result := qualitychecks.CheckAll(list)
	if result.IssueCount() > 0 {
		log.
			WithField("duplicates", len(result.DuplicateIDs)).
			WithField("id_mismatches", len(result.IDMismatchIDs)).
			WithField("out_of_range", len(result.OutOfRangeIDs)).
			WithField("mojibake", len(result.MojibakeIDs)).
			Warn("venue dump carries data quality issues")
	}

	store := venuestore.NewInstance(DB)
	if err = store.BatchUpsert(list); err != nil {
		log.WithError(err).Error("venue preload failed")
		return
	}
	log.WithField("venues", len(list)).Info("venues preloaded")
}
