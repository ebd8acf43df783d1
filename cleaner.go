package main

import (
	"strconv"
	"strings"

	"github.com/pivolan/healthcare_analyzer/domain/models"
)

const (
	keySeparator = "\x1f"
	nullKey      = "\x00"
)

// Clean drops exact duplicates first and then every row with a missing value.
// The input table is left untouched.
func Clean(t *models.Table) (*models.Table, models.CleanStats) {
	stats := models.CleanStats{InputRows: len(t.Rows)}

	deduped := DropDuplicates(t)
	stats.DuplicateRows = len(t.Rows) - len(deduped.Rows)

	cleaned := DropNulls(deduped)
	stats.NullRows = len(deduped.Rows) - len(cleaned.Rows)
	stats.OutputRows = len(cleaned.Rows)

	return cleaned, stats
}

// DropDuplicates keeps the first occurrence of every row. Numeric columns
// compare by value so 100 and 100.0 are the same cell; nulls equal nulls.
func DropDuplicates(t *models.Table) *models.Table {
	out := withRows(t, make([]models.Row, 0, len(t.Rows)))
	seen := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		key := rowKey(t, row)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// DropNulls removes rows that have a missing value in any column.
func DropNulls(t *models.Table) *models.Table {
	out := withRows(t, make([]models.Row, 0, len(t.Rows)))
	for _, row := range t.Rows {
		if hasNull(row) {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func hasNull(row models.Row) bool {
	for _, cell := range row {
		if cell.Null {
			return true
		}
	}
	return false
}

func rowKey(t *models.Table, row models.Row) string {
	parts := make([]string, len(row))
	for i, cell := range row {
		parts[i] = cellKey(cell, t.IsNumeric(i))
	}
	return strings.Join(parts, keySeparator)
}

func cellKey(cell models.Cell, numeric bool) string {
	if cell.Null {
		return nullKey
	}
	if numeric {
		if v, err := strconv.ParseFloat(strings.TrimSpace(cell.Value), 64); err == nil {
			if v == 0 {
				v = 0 // -0 and 0 are the same value
			}
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
	}
	return cell.Value
}

func withRows(t *models.Table, rows []models.Row) *models.Table {
	return &models.Table{
		Columns: t.Columns,
		Types:   t.Types,
		Rows:    rows,
	}
}
