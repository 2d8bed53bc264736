// Package source produces Table values from external inputs: delimited
// files, discovered directories, and SQLite databases.
package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/tablewise/tablewise/internal/table"
)

// CSVResult carries a loaded table plus the detection outcomes.
type CSVResult struct {
	Table     *table.Table
	Delimiter rune
	Encoding  string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadCSV reads a delimited file into a Table. Encoding is detected by
// trying UTF-8, GBK, and Latin-1 in order; the delimiter is sniffed among
// comma, semicolon, and tab. Ragged rows are kept; fully blank rows are
// dropped. At least a header row and one data row are required.
func LoadCSV(path string) (*CSVResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("file is empty: %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, enc, err := decodeBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	delim := detectDelimiter(text)
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	rows := records[:0]
	for _, r := range records {
		if !rowBlank(r) {
			rows = append(rows, r)
		}
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s needs a header row plus at least one data row", path)
	}

	return &CSVResult{
		Table:     table.New(rows[0], rows[1:]),
		Delimiter: delim,
		Encoding:  enc,
	}, nil
}

// decodeBytes tries UTF-8 (stripping a BOM when present), then GBK, then
// Latin-1, mirroring the encodings the tool's data commonly arrives in.
func decodeBytes(raw []byte) (string, string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw), "utf-8", nil
	}

	fallbacks := []struct {
		name string
		dec  *encoding.Decoder
	}{
		{"gbk", simplifiedchinese.GBK.NewDecoder()},
		{"latin-1", charmap.ISO8859_1.NewDecoder()},
	}
	for _, fb := range fallbacks {
		decoded, err := fb.dec.Bytes(raw)
		if err == nil && utf8.Valid(decoded) {
			return string(decoded), fb.name, nil
		}
	}
	return "", "", fmt.Errorf("unsupported character encoding")
}

// detectDelimiter picks the candidate occurring most often in the first
// line, defaulting to comma.
func detectDelimiter(text string) rune {
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}
	best, bestCount := ',', 0
	for _, cand := range []rune{',', ';', '\t'} {
		if c := strings.Count(line, string(cand)); c > bestCount {
			best, bestCount = cand, c
		}
	}
	return best
}

func rowBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
