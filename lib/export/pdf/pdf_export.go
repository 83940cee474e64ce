package pdfexport

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	venueapimodels "sailing-venues-backend/models/api/venue"
)

// GenerateSummary renders a one-page dataset summary report.
func GenerateSummary(stats venueapimodels.VenueStatsView, generatedAt time.Time) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.Cell(0, 10, tr("Sailing venues dataset summary"))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Generated: %v", generatedAt.Format("2006-01-02 15:04 MST"))))
	pdf.Ln(8)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Total venues: %v", stats.Total)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Verified venues: %v", stats.Verified)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Venues with unknown country: %v", stats.UnknownPlace)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Venues by country"))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 10)
	countries := make([]string, 0, len(stats.ByCountry))
	for country := range stats.ByCountry {
		countries = append(countries, country)
	}
	sort.Slice(countries, func(a, b int) bool {
		if stats.ByCountry[countries[a]] != stats.ByCountry[countries[b]] {
			return stats.ByCountry[countries[a]] > stats.ByCountry[countries[b]]
		}
		return countries[a] < countries[b]
	})
	for _, country := range countries {
		pdf.CellFormat(120, 6, tr(country), "B", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%v", stats.ByCountry[country]), "B", 1, "R", false, 0, "")
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	out := new(bytes.Buffer)
	if err = pdf.Output(out); err != nil {
		return nil, errors.Wrap(err, "pdf render failed")
	}
	return out.Bytes(), nil
}
