// Package qualitychecks holds the pure integrity checks over the venue dataset.
// Checks report findings only; venue rows are never rewritten, including
// names with suspected encoding corruption.
package qualitychecks

import (
	"strings"

	"sailing-venues-backend/models"
	dbmodels "sailing-venues-backend/models/db"
)

type Result struct {
	CheckedCount    int64
	DuplicateIDs    []string
	IDMismatchIDs   []string
	OutOfRangeIDs   []string
	MojibakeIDs     []string
	UnknownPlaceIDs []string
}

func (r Result) IssueCount() int {
	return len(r.DuplicateIDs) + len(r.IDMismatchIDs) + len(r.OutOfRangeIDs) + len(r.MojibakeIDs)
}

// CheckAll runs every dataset check over the given rows.
func CheckAll(list []dbmodels.Venue) Result {
	result := Result{CheckedCount: int64(len(list))}
	seen := make(map[string]bool, len(list))
	for _, rec := range list {
		if seen[rec.ID] {
			result.DuplicateIDs = append(result.DuplicateIDs, rec.ID)
		}
		seen[rec.ID] = true
		if rec.ID != rec.ExpectedID() {
			result.IDMismatchIDs = append(result.IDMismatchIDs, rec.ID)
		}
		if !ValidCoords(rec.CoordinatesLat, rec.CoordinatesLng) {
			result.OutOfRangeIDs = append(result.OutOfRangeIDs, rec.ID)
		}
		if HasMojibake(rec.Name) {
			result.MojibakeIDs = append(result.MojibakeIDs, rec.ID)
		}
		if rec.Country == models.UnknownPlace || rec.Region == models.UnknownPlace {
			result.UnknownPlaceIDs = append(result.UnknownPlaceIDs, rec.ID)
		}
	}
	return result
}

// ValidCoords checks decimal degree ranges: lat [-90,90], lng [-180,180].
func ValidCoords(lat, lng float64) bool {
	if lat < -90 || lat > 90 {
		return false
	}
	if lng < -180 || lng > 180 {
		return false
	}
	return true
}

// mojibakeMarkers are character sequences produced when UTF-8 bytes are
// re-decoded through a legacy single-byte charset, as observed in venue
// names like "Baie-d'Urf√©" and "Gardiner‚Äôs Bay".
var mojibakeMarkers = []string{
	"√",  // UTF-8 0xC3 lead byte through Mac Roman
	"‚Ä", // UTF-8 punctuation (0xE2 0x80 ..) through Mac Roman
	"¬",  // UTF-8 0xC2 lead byte through Mac Roman
	"Ã",  // UTF-8 0xC3 lead byte through Latin-1
	"â€", // UTF-8 punctuation through Windows-1252
}

// HasMojibake reports whether s carries double-encoding artifacts.
// Detection only: the original intent of a corrupted name cannot be
// recovered here, so nothing is corrected.
func HasMojibake(s string) bool {
	for _, marker := range mojibakeMarkers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
