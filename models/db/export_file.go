package dbmodels

type ExportFormat string

const (
	ExportFormatSQL  ExportFormat = "sql"
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatPDF  ExportFormat = "pdf"
)

// ExportFile is metadata for a generated export stored in S3.
type ExportFile struct {
	BaseModel
	Format     ExportFormat `gorm:"type:varchar(10);index" json:"format"`
	FileName   string       `gorm:"type:varchar(255)" json:"file_name"`
	ObjectName string       `gorm:"type:varchar(255)" json:"object_name"`
	Size       int64        `json:"size"`
	VenueCount int64        `json:"venue_count"`
}
