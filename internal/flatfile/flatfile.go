// Package flatfile reads the static CSV and JSON files that back the
// ferretería dataset. A load never fails loudly: any open, read, or parse
// error resolves to an empty row slice, because the caller treats "empty"
// as "nothing to show" rather than a distinguishable error state.
package flatfile

import (
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"ferreteria.lasu.pe/internal/logging"
)

// Row is one flat record: field name to value. CSV loads coerce
// numeric-looking fields to int64/float64; JSON loads keep whatever
// encoding/json produces.
type Row map[string]any

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// String coerces a field value to its canonical string form. Identifier
// comparison throughout the dataset goes through this, so "12", 12 and
// 12.0 all match each other.
func String(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// Float coerces a field value to float64, returning 0 for anything that
// does not look numeric.
func Float(v any) float64 {
	switch x := v.(type) {
	case int64:
		return float64(x)
	case int:
		return float64(x)
	case float64:
		return x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// coerceScalar mirrors dynamic typing on CSV cells: integers become int64,
// other numerics become float64, everything else stays a trimmed string.
func coerceScalar(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// LoadCSV reads a delimited source with a header row and returns one Row
// per non-blank data row, with scalar type coercion applied per cell.
// Any failure yields an empty slice.
func LoadCSV(path string, logger *slog.Logger) []Row {
	f, err := os.Open(path)
	if err != nil {
		logError(logger, "failed to open csv source", path, err)
		return []Row{}
	}
	defer logging.SafeCloseWithLogging(f, logger, "csv source")

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		logError(logger, "failed to parse csv source", path, err)
		return []Row{}
	}
	if len(records) < 1 {
		return []Row{}
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = coerceScalar(record[i])
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// LoadJSON reads a structured source holding a list of flat records. The
// tree is parsed whole and returned with no coercion beyond what
// encoding/json already does. Any failure yields an empty slice.
func LoadJSON(path string, logger *slog.Logger) []Row {
	b, err := os.ReadFile(path)
	if err != nil {
		logError(logger, "failed to read json source", path, err)
		return []Row{}
	}

	var rows []Row
	if err := json.Unmarshal(b, &rows); err != nil {
		logError(logger, "failed to parse json source", path, err)
		return []Row{}
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func logError(logger *slog.Logger, msg, path string, err error) {
	if logger == nil {
		return
	}
	logger.Error(msg, "path", path, "error", err)
}
