package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/dto"
)

var requiredImportColumns = []string{"date", "kind", "amount", "category"}

// ImportCSV reads rows with the header date,kind,amount,category[,subcategory][,label].
// Each row is posted in its own transaction; rows failing validation are
// reported and skipped, any other failure stops the import.
func (s *entryService) ImportCSV(ctx context.Context, accountID string, r io.Reader) (*dto.ImportEntriesResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, apperrors.NewValidationError("CSV has no header row")
	}
	if err != nil {
		return nil, apperrors.NewValidationError("cannot read CSV header: %v", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range requiredImportColumns {
		if _, ok := columns[required]; !ok {
			return nil, apperrors.NewValidationError("CSV missing required headers: %s", strings.Join(requiredImportColumns, ", "))
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	optional := func(record []string, name string) *string {
		v := field(record, name)
		if v == "" {
			return nil
		}
		return &v
	}

	res := &dto.ImportEntriesResponse{Errors: []string{}}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		line, _ := reader.FieldPos(0)
		_, err = s.post(ctx, account, entryInput{
			date:        field(record, "date"),
			amount:      field(record, "amount"),
			kind:        field(record, "kind"),
			category:    field(record, "category"),
			subcategory: optional(record, "subcategory"),
			label:       optional(record, "label"),
		})
		s.Record("entry_import", err)
		switch {
		case err == nil:
			res.Imported++
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrConflict):
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: %v", line, err))
		default:
			s.LogError(ctx, err, "CSV import aborted", slog.String("account_id", accountID), slog.Int("line", line))
			return nil, fmt.Errorf("import stopped at line %d: %w", line, err)
		}
	}

	s.LogInfo(ctx, "CSV import finished",
		slog.String("account_id", accountID),
		slog.Int("imported", res.Imported),
		slog.Int("rejected", len(res.Errors)))
	return res, nil
}
