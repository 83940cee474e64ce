package exporthandler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"sailing-venues-backend/db"
	pdfexport "sailing-venues-backend/lib/export/pdf"
	sqldumpexport "sailing-venues-backend/lib/export/sqldump"
	exportstore "sailing-venues-backend/lib/export/store"
	xlsexport "sailing-venues-backend/lib/export/xls"
	filestorage "sailing-venues-backend/lib/file-storage"
	initchecker "sailing-venues-backend/lib/utils/init-checker"
	venuestore "sailing-venues-backend/lib/venue/store"
	"sailing-venues-backend/models"
	venueapimodels "sailing-venues-backend/models/api/venue"
	dbmodels "sailing-venues-backend/models/db"
)

type Provider interface {
	Generate(ctx context.Context, format dbmodels.ExportFormat) (venueapimodels.ExportFileView, error)
	List(ctx context.Context) ([]venueapimodels.ExportFileView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		venueStore: venuestore.NewInstance(db.DB),
		store:      exportstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"venueStore", instance.venueStore,
		"store", instance.store,
		"fileStorage", filestorage.Instance,
		"xls", xlsexport.Instance,
		"sqldump", sqldumpexport.Instance,
	)
	Instance = instance
}

type impl struct {
	venueStore venuestore.Provider
	store      exportstore.Provider
}

const downloadLinkTTL = 24 * time.Hour

func (i impl) Generate(ctx context.Context, format dbmodels.ExportFormat) (venueapimodels.ExportFileView, error) {
	list, err := i.venueStore.ListAll()
	if err != nil {
		return venueapimodels.ExportFileView{}, err
	}

	var (
		data        []byte
		ext         string
		contentType string
	)
	switch format {
	case dbmodels.ExportFormatSQL:
		buf, err := sqldumpexport.Instance.ExportVenueDump(list)
		if err != nil {
			return venueapimodels.ExportFileView{}, err
		}
		data, ext, contentType = buf.Bytes(), "sql", "application/sql"
	case dbmodels.ExportFormatXLSX:
		buf, err := xlsexport.Instance.ExportVenueList(list)
		if err != nil {
			return venueapimodels.ExportFileView{}, err
		}
		data, ext, contentType = buf.Bytes(), "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case dbmodels.ExportFormatPDF:
		data, err = pdfexport.GenerateSummary(buildStats(list), time.Now())
		if err != nil {
			return venueapimodels.ExportFileView{}, err
		}
		ext, contentType = "pdf", "application/pdf"
	default:
		return venueapimodels.ExportFileView{}, errors.Errorf("unsupported export format %q", format)
	}

	fileName := fmt.Sprintf("sailing_venues_%v.%v", time.Now().UTC().Format("20060102_150405"), ext)
	objectName := fmt.Sprintf("%v/%v/%v", format, uuid.NewString(), fileName)

	if err = filestorage.Instance.EnsureExportBucket(ctx); err != nil {
		return venueapimodels.ExportFileView{}, err
	}
	if err = filestorage.Instance.UploadExport(ctx, objectName, data, contentType); err != nil {
		return venueapimodels.ExportFileView{}, err
	}

	rec := dbmodels.ExportFile{
		Format:     format,
		FileName:   fileName,
		ObjectName: objectName,
		Size:       int64(len(data)),
		VenueCount: int64(len(list)),
	}
	if rec.ID, err = i.store.Save(rec); err != nil {
		return venueapimodels.ExportFileView{}, err
	}

	url, err := filestorage.Instance.PresignedExportURL(ctx, objectName, downloadLinkTTL)
	if err != nil {
		log.WithError(err).WithField("object", objectName).Error("presigned url not built")
		url = ""
	}
	log.
		WithField("format", format).
		WithField("venues", len(list)).
		WithField("object", objectName).
		Info("export generated")
	return venueapimodels.ExportFileConvert(rec, url), nil
}

func (i impl) List(ctx context.Context) ([]venueapimodels.ExportFileView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]venueapimodels.ExportFileView, 0, len(recList))
	for _, rec := range recList {
		url, err := filestorage.Instance.PresignedExportURL(ctx, rec.ObjectName, downloadLinkTTL)
		if err != nil {
			log.WithError(err).WithField("object", rec.ObjectName).Error("presigned url not built")
			url = ""
		}
		result = append(result, venueapimodels.ExportFileConvert(rec, url))
	}
	return result, nil
}

func buildStats(list []dbmodels.Venue) venueapimodels.VenueStatsView {
	stats := venueapimodels.VenueStatsView{
		Total:     int64(len(list)),
		ByCountry: make(map[string]int64),
	}
	for _, rec := range list {
		if rec.Verified {
			stats.Verified++
		}
		stats.ByCountry[rec.Country]++
	}
	stats.UnknownPlace = stats.ByCountry[models.UnknownPlace]
	return stats
}
