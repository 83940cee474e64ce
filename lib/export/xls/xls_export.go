package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "sailing-venues-backend/models/db"
)

type Provider interface {
	ExportVenueList(list []dbmodels.Venue) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var venueHeaders = []string{"ID", "Name", "Latitude", "Longitude", "Country", "Region", "Venue type", "Time zone", "Data quality", "OSM ID", "OSM type", "Data source", "Verified"}

func (i impl) ExportVenueList(list []dbmodels.Venue) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeaderRow(f, sheet, row, venueHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header build failed")
	}
	if len(list) != 0 {
		row, err = writeVenueData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data build failed")
		}
	}
	f.SetSheetName(sheet, "Venues")
	return f.WriteToBuffer()
}

func writeVenueData(f *excelize.File, sheet string, list []dbmodels.Venue, row int) (int, error) {
	if err := styleDataCells(f, sheet, 1, row+1, len(venueHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeCell(f, sheet, col, row, item.ID); err != nil {
			return row, err
		}

		col++
		if err := writeCell(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		col++
		if err := writeCell(f, sheet, col, row, item.CoordinatesLat); err != nil {
			return row, err
		}

		col++
		if err := writeCell(f, sheet, col, row, item.CoordinatesLng); err != nil {
			return row, err
		}

		col++
		if err := writeCell(f, sheet, col, row, item.Country); err != nil {
			return row, err
		}

		col++
		if err := writeCell(f, sheet, col, row, item.Region); err != nil {
			return row, err
		}

		col++
		if err := writeCell(f, sheet, col, row, item.VenueType); err != nil {
			return row, err
		}

		col++
		if err := writeCell(f, sheet, col, row, item.TimeZone); err != nil {
			return row, err
		}

		col++
		if err := writeCell(f, sheet, col, row, item.DataQuality); err != nil {
			return row, err
		}

		col++
		if err := writeCell(f, sheet, col, row, item.OsmID); err != nil {
			return row, err
		}

		col++
		if err := writeCell(f, sheet, col, row, item.OsmType); err != nil {
			return row, err
		}

		col++
		if err := writeCell(f, sheet, col, row, item.DataSource); err != nil {
			return row, err
		}

		col++
		if err := writeCell(f, sheet, col, row, item.Verified); err != nil {
			return row, err
		}
	}
	return row, nil
}
