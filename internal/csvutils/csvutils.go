// Package csvutils cleans up and decodes the bank's CSV export text.
package csvutils

import (
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"strings"

	"fjacquet/fid2ofx/internal/parsererror"
)

// Normalize splits the raw export text into lines, trims them, drops empty
// ones and removes the export's stray trailing delimiter. The trailing
// delimiter is stripped only when every remaining line carries one:
// stripping a subset would silently misalign those rows against the header.
func Normalize(text, delimiter, lineBreak string) string {
	breakPattern := regexp.MustCompile(lineBreak)
	trailingPattern := regexp.MustCompile(regexp.QuoteMeta(delimiter) + ` *$`)

	var lines []string
	for _, line := range breakPattern.Split(text, -1) {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	everyLineHasTrailingDelimiter := len(lines) > 0
	for _, line := range lines {
		if !trailingPattern.MatchString(line) {
			everyLineHasTrailingDelimiter = false
			break
		}
	}
	if everyLineHasTrailingDelimiter {
		for i, line := range lines {
			lines[i] = trailingPattern.ReplaceAllString(line, "")
		}
	}

	return strings.Join(lines, lineBreak)
}

// DecodeRows parses normalized CSV text into one map per data row, keyed by
// the header labels from the first row. Row order is preserved and every
// value is trimmed. Inconsistent column counts and unterminated quotes
// surface as a DecodeError.
func DecodeRows(text, delimiter string) ([]map[string]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = []rune(delimiter)[0]

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, decodeError(err)
	}
	for i, label := range header {
		header[i] = strings.TrimSpace(label)
	}

	var rows []map[string]string
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, decodeError(err)
		}
		row := make(map[string]string, len(header))
		for i, label := range header {
			row[label] = strings.TrimSpace(fields[i])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func decodeError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &parsererror.DecodeError{Line: csvErr.Line, Err: err}
	}
	return &parsererror.DecodeError{Err: err}
}
