package osmclient

import (
	"fmt"
	"strings"

	"sailing-venues-backend/models"
)

// BuildIDQuery builds an Overpass QL query resolving the given element IDs
// of one type. "out center" yields lat/lon for nodes and a computed center
// for ways and relations, which is all the coordinate refresh needs.
func BuildIDQuery(osmType models.OsmType, ids []string, timeoutSec int) string {
	if timeoutSec <= 0 {
		timeoutSec = 25
	}
	return fmt.Sprintf("[out:json][timeout:%v];%v(id:%v);out center;",
		timeoutSec, osmType, strings.Join(ids, ","))
}
