package venueapimodels

import (
	"github.com/pkg/errors"

	apimodels "sailing-venues-backend/models/api"
	dbmodels "sailing-venues-backend/models/db"
)

type VenueView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"coordinates_lat"`
	Lng         float64 `json:"coordinates_lng"`
	Country     string  `json:"country"`
	Region      string  `json:"region"`
	VenueType   string  `json:"venue_type"`
	TimeZone    string  `json:"time_zone"`
	DataQuality string  `json:"data_quality"`
	OsmID       string  `json:"osm_id"`
	OsmType     string  `json:"osm_type"`
	DataSource  string  `json:"data_source"`
	Verified    bool    `json:"verified"`
}

func VenueConvert(rec dbmodels.Venue) VenueView {
	return VenueView{
		ID:          rec.ID,
		Name:        rec.Name,
		Lat:         rec.CoordinatesLat,
		Lng:         rec.CoordinatesLng,
		Country:     rec.Country,
		Region:      rec.Region,
		VenueType:   rec.VenueType,
		TimeZone:    rec.TimeZone,
		DataQuality: rec.DataQuality,
		OsmID:       rec.OsmID,
		OsmType:     rec.OsmType,
		DataSource:  rec.DataSource,
		Verified:    rec.Verified,
	}
}

type BBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

func (b BBox) Validate() error {
	if b.MinLat < -90 || b.MaxLat > 90 || b.MinLat > b.MaxLat {
		return errors.New("invalid latitude range")
	}
	if b.MinLng < -180 || b.MaxLng > 180 || b.MinLng > b.MaxLng {
		return errors.New("invalid longitude range")
	}
	return nil
}

type VenueFindRequest struct {
	apimodels.Pagination
	Name      string `json:"name"`       // substring match on venue name
	Country   string `json:"country"`    // exact match
	Region    string `json:"region"`     // exact match
	VenueType string `json:"venue_type"` // exact match
	Verified  *bool  `json:"verified"`
	BBox      *BBox  `json:"bbox"`
}

func (r VenueFindRequest) Validate() error {
	if r.BBox != nil {
		if err := r.BBox.Validate(); err != nil {
			return errors.Wrap(err, "invalid bounding box")
		}
	}
	return nil
}

type VenueStatsView struct {
	Total        int64            `json:"total"`
	Verified     int64            `json:"verified"`
	ByCountry    map[string]int64 `json:"by_country"`
	UnknownPlace int64            `json:"unknown_place"` // rows with country = 'Unknown'
}

type QualityReportView struct {
	ID              string   `json:"id"`
	CheckedCount    int64    `json:"checked_count"`
	IssueCount      int      `json:"issue_count"`
	DuplicateIDs    []string `json:"duplicate_ids"`
	IDMismatchIDs   []string `json:"id_mismatch_ids"`
	OutOfRangeIDs   []string `json:"out_of_range_ids"`
	MojibakeIDs     []string `json:"mojibake_ids"`
	UnknownPlaceIDs []string `json:"unknown_place_ids"`
}

func QualityReportConvert(rec dbmodels.QualityReport) QualityReportView {
	return QualityReportView{
		ID:              rec.ID,
		CheckedCount:    rec.CheckedCount,
		IssueCount:      rec.IssueCount(),
		DuplicateIDs:    rec.DuplicateIDs,
		IDMismatchIDs:   rec.IDMismatchIDs,
		OutOfRangeIDs:   rec.OutOfRangeIDs,
		MojibakeIDs:     rec.MojibakeIDs,
		UnknownPlaceIDs: rec.UnknownPlaceIDs,
	}
}

type ExportFileView struct {
	ID          string `json:"id"`
	Format      string `json:"format"`
	FileName    string `json:"file_name"`
	Size        int64  `json:"size"`
	VenueCount  int64  `json:"venue_count"`
	DownloadURL string `json:"download_url,omitempty"`
}

func ExportFileConvert(rec dbmodels.ExportFile, downloadURL string) ExportFileView {
	return ExportFileView{
		ID:          rec.ID,
		Format:      string(rec.Format),
		FileName:    rec.FileName,
		Size:        rec.Size,
		VenueCount:  rec.VenueCount,
		DownloadURL: downloadURL,
	}
}
