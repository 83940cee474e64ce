// Package dump reads and writes the generated sailing_venues upsert dump.
// The format is the one produced by the upstream OSM extract: one
// INSERT ... ON CONFLICT (id) DO UPDATE statement per venue, where the
// conflict clause refreshes only the two coordinate columns.
package dump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	dbmodels "sailing-venues-backend/models/db"
)

const TableName = "sailing_venues"

var columns = []string{
	"id", "name", "coordinates_lat", "coordinates_lng",
	"country", "region", "venue_type", "time_zone",
	"data_quality", "osm_id", "osm_type", "data_source", "verified",
}

const conflictClause = "ON CONFLICT (id) DO UPDATE SET coordinates_lat = EXCLUDED.coordinates_lat, coordinates_lng = EXCLUDED.coordinates_lng"

// Parse reads every upsert statement from r into venue records.
// Empty lines and line comments (--) are skipped. Statement order is
// preserved; duplicates are not collapsed here, the quality checker
// reports them.
func Parse(r io.Reader) ([]dbmodels.Venue, error) {
	stmts, err := splitStatements(r)
	if err != nil {
		return nil, err
	}
	list := make([]dbmodels.Venue, 0, len(stmts))
	for k, stmt := range stmts {
		rec, err := parseStatement(stmt)
		if err != nil {
			return nil, errors.Wrapf(err, "statement %v", k+1)
		}
		list = append(list, rec)
	}
	return list, nil
}

// Render writes venue records back as upsert statements in the dump format.
func Render(w io.Writer, list []dbmodels.Venue) error {
	bw := bufio.NewWriter(w)
	for _, rec := range list {
		if _, err := bw.WriteString(RenderStatement(rec)); err != nil {
			return errors.Wrap(err, "dump write failed")
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return errors.Wrap(err, "dump write failed")
		}
	}
	return bw.Flush()
}

// RenderStatement renders a single venue as an upsert statement.
func RenderStatement(rec dbmodels.Venue) string {
	values := []string{
		quote(rec.ID),
		quote(rec.Name),
		formatCoord(rec.CoordinatesLat),
		formatCoord(rec.CoordinatesLng),
		quote(rec.Country),
		quote(rec.Region),
		quote(rec.VenueType),
		quote(rec.TimeZone),
		quote(rec.DataQuality),
		quote(rec.OsmID),
		quote(rec.OsmType),
		quote(rec.DataSource),
		strconv.FormatBool(rec.Verified),
	}
	return fmt.Sprintf("INSERT INTO %v (%v) VALUES (%v) %v;",
		TableName,
		strings.Join(columns, ", "),
		strings.Join(values, ", "),
		conflictClause,
	)
}

// quote renders a single-quoted SQL string literal, doubling embedded quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// splitStatements cuts the input on semicolons outside string literals.
func splitStatements(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "dump read failed")
	}
	var (
		stmts    []string
		sb       strings.Builder
		inString bool
	)
	runes := []rune(string(data))
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if inString {
			sb.WriteRune(ch)
			if ch == '\'' {
				// doubled quote stays inside the literal
				if i+1 < len(runes) && runes[i+1] == '\'' {
					sb.WriteRune(runes[i+1])
					i++
					continue
				}
				inString = false
			}
			continue
		}
		switch {
		case ch == '\'':
			inString = true
			sb.WriteRune(ch)
		case ch == '-' && i+1 < len(runes) && runes[i+1] == '-' && strings.TrimSpace(sb.String()) == "":
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
		case ch == ';':
			stmt := strings.TrimSpace(sb.String())
			if stmt != "" {
				stmts = append(stmts, stmt)
			}
			sb.Reset()
		default:
			sb.WriteRune(ch)
		}
	}
	if inString {
		return nil, errors.New("unterminated string literal")
	}
	if tail := strings.TrimSpace(sb.String()); tail != "" {
		return nil, errors.Errorf("trailing content without terminator: %.40q", tail)
	}
	return stmts, nil
}

func parseStatement(stmt string) (rec dbmodels.Venue, err error) {
	rest, ok := cutPrefixFold(stmt, "INSERT INTO "+TableName)
	if !ok {
		return rec, errors.Errorf("not an upsert into %v", TableName)
	}
	cols, rest, err := parseParenList(rest)
	if err != nil {
		return rec, errors.Wrap(err, "column list")
	}
	if err = checkColumns(cols); err != nil {
		return rec, err
	}
	rest, ok = cutPrefixFold(rest, "VALUES")
	if !ok {
		return rec, errors.New("missing VALUES clause")
	}
	values, rest, err := parseParenList(rest)
	if err != nil {
		return rec, errors.Wrap(err, "value list")
	}
	if len(values) != len(columns) {
		return rec, errors.Errorf("expected %v values, got %v", len(columns), len(values))
	}
	if !equalFoldSpace(rest, conflictClause) {
		return rec, errors.New("missing or unexpected conflict clause")
	}
	return buildVenue(values)
}

func checkColumns(cols []string) error {
	if len(cols) != len(columns) {
		return errors.Errorf("expected %v columns, got %v", len(columns), len(cols))
	}
	for k, col := range cols {
		if !strings.EqualFold(strings.TrimSpace(col), columns[k]) {
			return errors.Errorf("unexpected column %q at position %v", col, k+1)
		}
	}
	return nil
}

func buildVenue(values []string) (rec dbmodels.Venue, err error) {
	get := func(k int) (string, error) {
		return unquote(values[k])
	}
	if rec.ID, err = get(0); err != nil {
		return rec, errors.Wrap(err, "id")
	}
	if rec.Name, err = get(1); err != nil {
		return rec, errors.Wrap(err, "name")
	}
	if rec.CoordinatesLat, err = strconv.ParseFloat(values[2], 64); err != nil {
		return rec, errors.Wrap(err, "coordinates_lat")
	}
	if rec.CoordinatesLng, err = strconv.ParseFloat(values[3], 64); err != nil {
		return rec, errors.Wrap(err, "coordinates_lng")
	}
	if rec.Country, err = get(4); err != nil {
		return rec, errors.Wrap(err, "country")
	}
	if rec.Region, err = get(5); err != nil {
		return rec, errors.Wrap(err, "region")
	}
	if rec.VenueType, err = get(6); err != nil {
		return rec, errors.Wrap(err, "venue_type")
	}
	if rec.TimeZone, err = get(7); err != nil {
		return rec, errors.Wrap(err, "time_zone")
	}
	if rec.DataQuality, err = get(8); err != nil {
		return rec, errors.Wrap(err, "data_quality")
	}
	if rec.OsmID, err = get(9); err != nil {
		return rec, errors.Wrap(err, "osm_id")
	}
	if rec.OsmType, err = get(10); err != nil {
		return rec, errors.Wrap(err, "osm_type")
	}
	if rec.DataSource, err = get(11); err != nil {
		return rec, errors.Wrap(err, "data_source")
	}
	if rec.Verified, err = strconv.ParseBool(strings.ToLower(values[12])); err != nil {
		return rec, errors.Wrap(err, "verified")
	}
	return rec, nil
}

// parseParenList consumes a parenthesized, comma separated list from the
// head of s and returns raw items plus the remainder after the closing paren.
func parseParenList(s string) (items []string, rest string, err error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") {
		return nil, "", errors.New("expected opening parenthesis")
	}
	var (
		sb       strings.Builder
		inString bool
	)
	runes := []rune(s[1:])
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if inString {
			sb.WriteRune(ch)
			if ch == '\'' {
				if i+1 < len(runes) && runes[i+1] == '\'' {
					sb.WriteRune(runes[i+1])
					i++
					continue
				}
				inString = false
			}
			continue
		}
		switch ch {
		case '\'':
			inString = true
			sb.WriteRune(ch)
		case ',':
			items = append(items, strings.TrimSpace(sb.String()))
			sb.Reset()
		case ')':
			items = append(items, strings.TrimSpace(sb.String()))
			return items, strings.TrimSpace(string(runes[i+1:])), nil
		default:
			sb.WriteRune(ch)
		}
	}
	return nil, "", errors.New("missing closing parenthesis")
}

func unquote(raw string) (string, error) {
	if len(raw) < 2 || !strings.HasPrefix(raw, "'") || !strings.HasSuffix(raw, "'") {
		return "", errors.Errorf("expected quoted literal, got %q", raw)
	}
	return strings.ReplaceAll(raw[1:len(raw)-1], "''", "'"), nil
}

func cutPrefixFold(s, prefix string) (rest string, ok bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return strings.TrimSpace(s[len(prefix):]), true
}

// equalFoldSpace compares two clauses ignoring case and whitespace runs.
func equalFoldSpace(a, b string) bool {
	return strings.EqualFold(strings.Join(strings.Fields(a), " "), strings.Join(strings.Fields(b), " "))
}
