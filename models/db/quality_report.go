package dbmodels

import "github.com/lib/pq"

// QualityReport keeps the result of the latest data quality run.
// Findings are reported only, source rows are never rewritten.
type QualityReport struct {
	BaseModel
	CheckedCount    int64          `json:"checked_count"`
	DuplicateIDs    pq.StringArray `gorm:"type:text[]" json:"duplicate_ids"`
	IDMismatchIDs   pq.StringArray `gorm:"type:text[]" json:"id_mismatch_ids"`
	OutOfRangeIDs   pq.StringArray `gorm:"type:text[]" json:"out_of_range_ids"`
	MojibakeIDs     pq.StringArray `gorm:"type:text[]" json:"mojibake_ids"`
	UnknownPlaceIDs pq.StringArray `gorm:"type:text[]" json:"unknown_place_ids"`
}

func (r QualityReport) IssueCount() int {
	return len(r.DuplicateIDs) + len(r.IDMismatchIDs) + len(r.OutOfRangeIDs) + len(r.MojibakeIDs)
}
