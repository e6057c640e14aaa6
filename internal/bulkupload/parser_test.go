package bulkupload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCSV(t *testing.T) {
	t.Run("Empty input", func(t *testing.T) {
		doc := ParseCSV("")
		assert.Empty(t, doc.Headers)
		assert.Empty(t, doc.Rows)
	})

	t.Run("Only blank lines", func(t *testing.T) {
		doc := ParseCSV("\n   \n\t\n")
		assert.Empty(t, doc.Headers)
		assert.Empty(t, doc.Rows)
	})

	t.Run("Headers are trimmed", func(t *testing.T) {
		doc := ParseCSV(" Title , Description \nA,B\n")
		assert.Equal(t, []string{"Title", "Description"}, doc.Headers)
		assert.Equal(t, "A", doc.Rows[0].Data["Title"])
	})

	t.Run("Row numbers skip blank lines", func(t *testing.T) {
		text := "Title,Description\n\nrow one,d1\n   \nrow two,d2\nrow three,d3\n\n"
		doc := ParseCSV(text)
		assert.Len(t, doc.Rows, 3)
		for i, row := range doc.Rows {
			assert.Equal(t, i+2, row.RowNumber)
		}
		assert.Equal(t, "row three", doc.Rows[2].Data["Title"])
	})

	t.Run("Short row pads missing columns with empty string", func(t *testing.T) {
		doc := ParseCSV("Title,Description,Currency\nonly title\n")
		row := doc.Rows[0]
		assert.Equal(t, "only title", row.Data["Title"])
		assert.Equal(t, "", row.Data["Description"])
		assert.Equal(t, "", row.Data["Currency"])
	})

	t.Run("Long row drops surplus values", func(t *testing.T) {
		doc := ParseCSV("Title,Description\na,b,c,d\n")
		row := doc.Rows[0]
		assert.Len(t, row.Data, 2)
		assert.Equal(t, "a", row.Data["Title"])
		assert.Equal(t, "b", row.Data["Description"])
	})

	t.Run("Values are trimmed", func(t *testing.T) {
		doc := ParseCSV("Title,Description\n  spaced  ,\tok\n")
		assert.Equal(t, "spaced", doc.Rows[0].Data["Title"])
		assert.Equal(t, "ok", doc.Rows[0].Data["Description"])
	})
}
