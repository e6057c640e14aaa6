package bulkupload

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

type ErrorKind string

const (
	ErrorKindMissingFields ErrorKind = "missing_fields"
	ErrorKindExtraFields   ErrorKind = "extra_fields"
	ErrorKindInvalidFormat ErrorKind = "invalid_format"
	// ErrorKindValidation carries field errors reported by the remote
	// validate pass, flattened to one entry per row.
	ErrorKindValidation ErrorKind = "validation_error"
)

// ValidationError describes one rule violation for one row. A row can
// accumulate several entries: one aggregated missing_fields, one aggregated
// extra_fields, and one invalid_format per offending field.
type ValidationError struct {
	RowNumber int       `json:"row_number"`
	Kind      ErrorKind `json:"kind"`
	Message   string    `json:"message"`
	Fields    []string  `json:"fields,omitempty"`
}

var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateHeaders returns the schema columns absent from headers. Matching
// is exact and case-sensitive. A non-empty result means the file was not
// built from the current template and row validation must not proceed.
func ValidateHeaders(headers, schema []string) []string {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	var missing []string
	for _, f := range schema {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	return missing
}

// ValidateRow checks one parsed row against the schema. headers is the
// file's column list in encounter order, used to report unknown columns
// deterministically.
func ValidateRow(row ParsedRow, headers, schema []string) []ValidationError {
	var errs []ValidationError

	required := make(map[string]bool, len(schema))
	for _, f := range schema {
		required[f] = true
	}

	// Rule 1: required fields must be present and non-blank.
	var missing []string
	for _, f := range schema {
		if strings.TrimSpace(row.Data[f]) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, ValidationError{
			RowNumber: row.RowNumber,
			Kind:      ErrorKindMissingFields,
			Message:   "Missing required fields: " + strings.Join(missing, ", "),
			Fields:    missing,
		})
	}

	// Rule 2: columns outside the schema.
	var extra []string
	for _, h := range headers {
		if _, ok := row.Data[h]; ok && !required[h] {
			extra = append(extra, h)
		}
	}
	if len(extra) > 0 {
		errs = append(errs, ValidationError{
			RowNumber: row.RowNumber,
			Kind:      ErrorKindExtraFields,
			Message:   "Unknown fields: " + strings.Join(extra, ", "),
			Fields:    extra,
		})
	}

	// Rules 3 and 4: numeric unit attributes, then the price column.
	for _, f := range append(append([]string{}, numericFields...), PriceField(schema)) {
		if f == "" || !required[f] {
			continue
		}
		if v := row.Data[f]; !isNumeric(v) {
			errs = append(errs, ValidationError{
				RowNumber: row.RowNumber,
				Kind:      ErrorKindInvalidFormat,
				Message:   fmt.Sprintf("%s must be a number", f),
				Fields:    []string{f},
			})
		}
	}

	// Rule 5: lexical date check only, no calendar validation.
	if required[FieldAvailableFrom] {
		if v := strings.TrimSpace(row.Data[FieldAvailableFrom]); v != "" && !dateFormat.MatchString(v) {
			errs = append(errs, ValidationError{
				RowNumber: row.RowNumber,
				Kind:      ErrorKindInvalidFormat,
				Message:   fmt.Sprintf("%s must be in YYYY-MM-DD format", FieldAvailableFrom),
				Fields:    []string{FieldAvailableFrom},
			})
		}
	}

	return errs
}

// isNumeric reports whether a cell parses as a finite number. Surrounding
// whitespace is tolerated and the empty string passes (the missing-field
// rule owns blank cells).
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	n, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(n, 0) && !math.IsNaN(n)
}
