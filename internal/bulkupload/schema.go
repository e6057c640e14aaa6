package bulkupload

import (
	"strings"

	"estatedesk-backend/internal/domain"
)

// Column names shared by every transaction type, in template order.
const (
	FieldProjectName    = "Project Name"
	FieldZoneName       = "Zone Name"
	FieldBlockName      = "Block Name"
	FieldPropertyNumber = "Property Number"
	FieldPropertyType   = "Property Type"
	FieldBedrooms       = "Bedrooms"
	FieldBathrooms      = "Bathrooms"
	FieldUnitSize       = "Unit Size"
	FieldFurnishing     = "Furnishing"
	FieldView           = "View"
	FieldTitle          = "Title"
	FieldDescription    = "Description"
	FieldCurrency       = "Currency"
	FieldAvailableFrom  = "Available From"

	FieldLeasePrice    = "Lease Price"
	FieldSalePrice     = "Sale Price"
	FieldPricePerNight = "Price Per Night"
)

var commonFields = []string{
	FieldProjectName,
	FieldZoneName,
	FieldBlockName,
	FieldPropertyNumber,
	FieldPropertyType,
	FieldBedrooms,
	FieldBathrooms,
	FieldUnitSize,
	FieldFurnishing,
	FieldView,
	FieldTitle,
	FieldDescription,
	FieldCurrency,
}

// FieldSchema returns the ordered list of required columns for a transaction
// type. The schemas share a common prefix and diverge in the price column;
// homestay has no "Available From". Unknown types fall back to lease.
func FieldSchema(t domain.TransactionType) []string {
	var tail []string
	switch t {
	case domain.TransactionTypeSale:
		tail = []string{FieldSalePrice, FieldAvailableFrom}
	case domain.TransactionTypeHomeStay:
		tail = []string{FieldPricePerNight}
	default:
		tail = []string{FieldLeasePrice, FieldAvailableFrom}
	}
	schema := make([]string, 0, len(commonFields)+len(tail))
	schema = append(schema, commonFields...)
	schema = append(schema, tail...)
	return schema
}

// PriceField returns the single schema column whose name contains "Price".
func PriceField(schema []string) string {
	for _, f := range schema {
		if strings.Contains(f, "Price") {
			return f
		}
	}
	return ""
}

// numericFields are the unit-attribute columns that must parse as numbers
// when supplied. The price column is checked separately per schema.
var numericFields = []string{FieldBedrooms, FieldBathrooms, FieldUnitSize}
