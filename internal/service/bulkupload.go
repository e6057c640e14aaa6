package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"estatedesk-backend/internal/bulkupload"
	"estatedesk-backend/internal/domain"
	"estatedesk-backend/internal/logger"
	"estatedesk-backend/internal/repository"
	"estatedesk-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HeaderMismatchError rejects an upload whose header row lacks required
// columns; row processing never starts.
type HeaderMismatchError struct {
	Missing []string
}

func (e *HeaderMismatchError) Error() string {
	return "CSV is missing required columns: " + strings.Join(e.Missing, ", ")
}

// RowFieldError is one field-level failure for one row, as exposed on the
// wire.
type RowFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RowResult groups all field errors of one failed row.
type RowResult struct {
	Row    int             `json:"row"`
	Errors []RowFieldError `json:"errors"`
}

// BulkUploadResult is the outcome of one validate or commit pass.
type BulkUploadResult struct {
	Reference            string            `json:"reference"`
	Total                int               `json:"total"`
	Successful           int               `json:"successful"`
	Failed               int               `json:"failed"`
	ValidRows            []int             `json:"validRows"`
	Errors               []RowResult       `json:"errors"`
	SuccessfulProperties []domain.Property `json:"successfulProperties,omitempty"`
}

type bulkUploadService struct {
	propertyRepo repository.PropertyRepository
	masterRepo   repository.MasterDataRepository
	uploadRepo   repository.UploadRepository
	archive      storage.ArchiveStore
}

func NewBulkUploadService(
	propertyRepo repository.PropertyRepository,
	masterRepo repository.MasterDataRepository,
	uploadRepo repository.UploadRepository,
	archive storage.ArchiveStore,
) BulkUploadService {
	return &bulkUploadService{
		propertyRepo: propertyRepo,
		masterRepo:   masterRepo,
		uploadRepo:   uploadRepo,
		archive:      archive,
	}
}

func (s *bulkUploadService) Upload(ctx context.Context, csvData string, txType domain.TransactionType, validateOnly bool) (*BulkUploadResult, error) {
	log := logger.WithService("bulk_upload")

	doc := bulkupload.ParseCSV(csvData)
	schema := bulkupload.FieldSchema(txType)
	if missing := bulkupload.ValidateHeaders(doc.Headers, schema); len(missing) > 0 {
		return nil, &HeaderMismatchError{Missing: missing}
	}

	hash := contentHash(csvData)

	// A commit of a payload already committed is answered from the recorded
	// result. This is what makes client-side commit retries safe: the client
	// replays the identical CSV text, so the hash matches.
	if !validateOnly {
		if prior, err := s.uploadRepo.GetCommittedByHash(ctx, hash, txType); err == nil {
			log.Info("Replayed commit answered idempotently", "reference", prior.Reference)
			return &BulkUploadResult{
				Reference:  prior.Reference,
				Total:      int(prior.Total),
				Successful: int(prior.Successful),
				Failed:     int(prior.Failed),
			}, nil
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to check for prior commit: %w", err)
		}
	}

	result := &BulkUploadResult{Total: len(doc.Rows)}
	var valid []*domain.Property
	for _, row := range doc.Rows {
		fieldErrs := localFieldErrors(bulkupload.ValidateRow(row, doc.Headers, schema))

		var property *domain.Property
		if len(fieldErrs) == 0 {
			var resolveErrs []RowFieldError
			property, resolveErrs = s.buildProperty(ctx, row, txType, schema)
			fieldErrs = append(fieldErrs, resolveErrs...)
		}

		if len(fieldErrs) > 0 {
			result.Failed++
			result.Errors = append(result.Errors, RowResult{Row: row.RowNumber, Errors: fieldErrs})
			continue
		}
		result.Successful++
		result.ValidRows = append(result.ValidRows, row.RowNumber)
		valid = append(valid, property)
	}

	status := domain.UploadStatusValidated
	if !validateOnly {
		status = domain.UploadStatusCommitted
		if len(valid) > 0 {
			if err := s.propertyRepo.CreateBatch(ctx, valid); err != nil {
				return nil, fmt.Errorf("failed to insert properties: %w", err)
			}
		}
		for _, p := range valid {
			result.SuccessfulProperties = append(result.SuccessfulProperties, *p)
		}
	}

	record := &domain.UploadRecord{
		Reference:       uuid.New().String(),
		TransactionType: txType,
		ContentHash:     hash,
		Status:          status,
		Total:           int32(result.Total),
		Successful:      int32(result.Successful),
		Failed:          int32(result.Failed),
	}
	if err := s.uploadRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}
	result.Reference = record.Reference

	// Archive the raw payload on commit only; validate-only passes leave
	// just the audit row.
	if !validateOnly {
		if err := s.archive.Save(ctx, record.Reference, strings.NewReader(csvData)); err != nil {
			log.Error("Failed to archive CSV payload", "reference", record.Reference, "error", err)
		}
	}

	log.Info("Bulk upload pass finished",
		"reference", record.Reference,
		"validate_only", validateOnly,
		"total", result.Total,
		"successful", result.Successful,
		"failed", result.Failed)
	return result, nil
}

func (s *bulkUploadService) ListRecentUploads(ctx context.Context, limit int32) ([]domain.UploadRecord, error) {
	return s.uploadRepo.ListRecent(ctx, limit)
}

// buildProperty resolves master-data names onto IDs and converts the row's
// cells into a property ready for insert. Resolution failures are reported
// as field errors on the same footing as format errors.
func (s *bulkUploadService) buildProperty(ctx context.Context, row bulkupload.ParsedRow, txType domain.TransactionType, schema []string) (*domain.Property, []RowFieldError) {
	var errs []RowFieldError

	project, err := s.masterRepo.GetProjectByName(ctx, row.Data[bulkupload.FieldProjectName])
	if err != nil {
		errs = append(errs, unknownValue(bulkupload.FieldProjectName, row.Data[bulkupload.FieldProjectName]))
	}

	var zone *domain.Zone
	if project != nil {
		zone, err = s.masterRepo.GetZoneByName(ctx, project.ID, row.Data[bulkupload.FieldZoneName])
		if err != nil {
			errs = append(errs, unknownValue(bulkupload.FieldZoneName, row.Data[bulkupload.FieldZoneName]))
		}
	}

	var block *domain.Block
	if zone != nil {
		block, err = s.masterRepo.GetBlockByName(ctx, zone.ID, row.Data[bulkupload.FieldBlockName])
		if err != nil {
			errs = append(errs, unknownValue(bulkupload.FieldBlockName, row.Data[bulkupload.FieldBlockName]))
		}
	}

	propertyType, err := s.masterRepo.GetPropertyTypeByName(ctx, row.Data[bulkupload.FieldPropertyType])
	if err != nil {
		errs = append(errs, unknownValue(bulkupload.FieldPropertyType, row.Data[bulkupload.FieldPropertyType]))
	}

	currency, err := s.masterRepo.GetCurrencyByCode(ctx, row.Data[bulkupload.FieldCurrency])
	if err != nil {
		errs = append(errs, unknownValue(bulkupload.FieldCurrency, row.Data[bulkupload.FieldCurrency]))
	}

	if len(errs) > 0 {
		return nil, errs
	}

	price, err := decimal.NewFromString(strings.TrimSpace(row.Data[bulkupload.PriceField(schema)]))
	if err != nil {
		return nil, []RowFieldError{{Field: bulkupload.PriceField(schema), Message: bulkupload.PriceField(schema) + " must be a number"}}
	}
	unitSize, err := decimal.NewFromString(strings.TrimSpace(row.Data[bulkupload.FieldUnitSize]))
	if err != nil {
		return nil, []RowFieldError{{Field: bulkupload.FieldUnitSize, Message: "Unit Size must be a number"}}
	}

	property := &domain.Property{
		ProjectID:       project.ID,
		ZoneID:          zone.ID,
		BlockID:         block.ID,
		PropertyNumber:  row.Data[bulkupload.FieldPropertyNumber],
		PropertyTypeID:  propertyType.ID,
		TransactionType: txType,
		Bedrooms:        parseCount(row.Data[bulkupload.FieldBedrooms]),
		Bathrooms:       parseCount(row.Data[bulkupload.FieldBathrooms]),
		UnitSize:        unitSize,
		Furnishing:      row.Data[bulkupload.FieldFurnishing],
		View:            row.Data[bulkupload.FieldView],
		Title:           row.Data[bulkupload.FieldTitle],
		Description:     row.Data[bulkupload.FieldDescription],
		Price:           price,
		CurrencyCode:    currency.Code,
		Status:          domain.PropertyStatusDraft,
	}
	if containsField(schema, bulkupload.FieldAvailableFrom) {
		available := row.Data[bulkupload.FieldAvailableFrom]
		property.AvailableFrom = &available
	}
	return property, nil
}

// localFieldErrors converts pipeline validation errors into per-field wire
// errors.
func localFieldErrors(errs []bulkupload.ValidationError) []RowFieldError {
	var out []RowFieldError
	for _, e := range errs {
		switch e.Kind {
		case bulkupload.ErrorKindMissingFields:
			for _, f := range e.Fields {
				out = append(out, RowFieldError{Field: f, Message: f + " is required"})
			}
		case bulkupload.ErrorKindExtraFields:
			for _, f := range e.Fields {
				out = append(out, RowFieldError{Field: f, Message: f + " is not a recognized column"})
			}
		default:
			for _, f := range e.Fields {
				out = append(out, RowFieldError{Field: f, Message: e.Message})
			}
		}
	}
	return out
}

func unknownValue(field, value string) RowFieldError {
	return RowFieldError{Field: field, Message: fmt.Sprintf("%s %q does not exist", field, value)}
}

func containsField(schema []string, field string) bool {
	for _, f := range schema {
		if f == field {
			return true
		}
	}
	return false
}

// parseCount reads a validated numeric cell as a whole number, truncating
// decimals.
func parseCount(s string) int32 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int32(f)
}

func contentHash(csvData string) string {
	sum := sha256.Sum256([]byte(csvData))
	return hex.EncodeToString(sum[:])
}
