package bulkupload

import (
	"fmt"
	"strings"
	"time"

	"estatedesk-backend/internal/domain"
)

// TemplateContentType is the MIME type for generated templates.
const TemplateContentType = "text/csv;charset=utf-8;"

// Template renders the downloadable CSV template for a transaction type:
// the schema header line plus one illustrative sample row. The suggested
// filename carries a millisecond timestamp so repeated downloads do not
// collide.
func Template(t domain.TransactionType) ([]byte, string) {
	schema := FieldSchema(t)

	sample := make([]string, len(schema))
	for i, f := range schema {
		sample[i] = sampleValue(f)
	}

	var b strings.Builder
	b.WriteString(strings.Join(schema, ","))
	b.WriteString("\n")
	b.WriteString(strings.Join(sample, ","))
	b.WriteString("\n")

	filename := fmt.Sprintf("%s_properties_template_%d.csv", t, time.Now().UnixMilli())
	return []byte(b.String()), filename
}

func sampleValue(field string) string {
	switch {
	case strings.Contains(field, "Price"):
		return "1000"
	case field == FieldBedrooms, field == FieldBathrooms:
		return "2"
	case field == FieldUnitSize:
		return "1200"
	case field == FieldCurrency:
		return "USD"
	case field == FieldAvailableFrom:
		return "2024-01-01"
	default:
		return "Sample " + field
	}
}
