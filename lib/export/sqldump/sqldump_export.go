package sqldumpexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"sailing-venues-backend/lib/dump"
	dbmodels "sailing-venues-backend/models/db"
)

type Provider interface {
	ExportVenueDump(list []dbmodels.Venue) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// ExportVenueDump regenerates the upsert dump from live rows, in the same
// statement shape the preload parser accepts.
func (i impl) ExportVenueDump(list []dbmodels.Venue) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "-- sailing_venues export, %v rows, generated %v\n",
		len(list), time.Now().UTC().Format(time.RFC3339))
	if err := dump.Render(buf, list); err != nil {
		return nil, errors.Wrap(err, "dump render failed")
	}
	return buf, nil
}
