// Package records turns decoded CSV rows into the sorted transaction record
// set the statement builder consumes.
package records

import (
	"fmt"
	"sort"

	"fjacquet/fid2ofx/internal/models"
	"fjacquet/fid2ofx/internal/parsererror"
	"fjacquet/fid2ofx/internal/schema"
)

// Build maps one decoded row onto a record through the column schema.
// Headers without a schema entry are ignored so extra export columns do not
// break conversion.
func Build(row map[string]string) (models.Record, error) {
	record := models.EmptyRecord()
	for label, value := range row {
		column, ok := schema.ByLabel(label)
		if !ok {
			continue
		}
		if err := column.Apply(&record, value); err != nil {
			return models.Record{}, fmt.Errorf("column %q: %w", label, err)
		}
	}
	return record, nil
}

// BuildAll builds every row and returns the records sorted most recent
// first. A single malformed row fails the whole run: the statement's date
// range and balances need the complete dataset, so there is no best-effort
// partial output.
func BuildAll(rows []map[string]string) ([]models.Record, error) {
	if len(rows) == 0 {
		return nil, &parsererror.ValidationError{Reason: "CSV file is empty"}
	}

	result := make([]models.Record, 0, len(rows))
	for i, row := range rows {
		record, err := Build(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		result = append(result, record)
	}

	SortByDateDesc(result)
	return result, nil
}

// SortByDateDesc orders records most recent first. The comparator is
// strict, so records sharing an operation date keep their original row
// order.
func SortByDateDesc(records []models.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].OperationDate.After(records[j].OperationDate)
	})
}
