package bulkupload

import "strings"

// ParsedRow is one data row of an uploaded CSV. RowNumber is the 1-based
// line number with the header counted as line 1, so the first data row is 2.
// Blank lines do not consume a slot.
type ParsedRow struct {
	RowNumber int               `json:"row_number"`
	Data      map[string]string `json:"data"`
}

// Document is the parse result: the trimmed header columns in file order and
// every non-blank data row.
type Document struct {
	Headers []string    `json:"headers"`
	Rows    []ParsedRow `json:"rows"`
}

// ParseCSV converts raw CSV text into a Document. Splitting is a naive
// per-line comma split: quoted fields containing commas are NOT handled,
// matching what the production template generator emits. Values are mapped
// onto headers positionally; short rows pad missing trailing columns with
// "", long rows drop the surplus values. ParseCSV never fails; malformed
// input degrades to empty or partial values for the validator to catch.
func ParseCSV(text string) Document {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return Document{}
	}

	headers := splitFields(lines[0])

	doc := Document{Headers: headers}
	for i, line := range lines[1:] {
		values := splitFields(line)
		data := make(map[string]string, len(headers))
		for j, h := range headers {
			if j < len(values) {
				data[h] = values[j]
			} else {
				data[h] = ""
			}
		}
		doc.Rows = append(doc.Rows, ParsedRow{RowNumber: i + 2, Data: data})
	}
	return doc
}

func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
