package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/pivolan/healthcare_analyzer/domain/models"
	"github.com/xuri/excelize/v2"
)

const SEPARATOR = ','

const (
	ColumnBillAmount = "Bill_Amount"
	ColumnDiagnosis  = "Diagnosis"
	ColumnDepartment = "Department"
	ColumnRegion     = "Region"
	ColumnAge        = "Age"
)

var requiredColumns = []string{ColumnBillAmount, ColumnDiagnosis, ColumnDepartment, ColumnRegion, ColumnAge}

var (
	ErrMissingColumn     = errors.New("missing expected column")
	ErrNoHeader          = errors.New("first row is not a header")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// nullTokens are the cell values read as missing, same set pandas uses by
// default. Tokens match exactly; blank cells are missing too.
var nullTokens = map[string]bool{
	"":         true,
	"NA":       true,
	"N/A":      true,
	"n/a":      true,
	"NaN":      true,
	"nan":      true,
	"-NaN":     true,
	"-nan":     true,
	"NULL":     true,
	"null":     true,
	"None":     true,
	"<NA>":     true,
	"#N/A":     true,
	"#NA":      true,
	"#N/A N/A": true,
	"1.#IND":   true,
	"-1.#IND":  true,
	"1.#QNAN":  true,
	"-1.#QNAN": true,
}

func isNull(value string) bool {
	return nullTokens[value] || strings.TrimSpace(value) == ""
}

// LoadTable reads the dataset at path into a record table. The parser is
// chosen by extension after any archive suffix (.gz, .lz4, .zip) is removed.
func LoadTable(path string) (*models.Table, error) {
	rc, name, err := openDataset(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var table *models.Table
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv", ".txt", "":
		table, err = readCSV(rc)
	case ".xlsx":
		table, err = readXLSX(rc)
	case ".parquet":
		table, err = readParquet(rc)
	default:
		return nil, fmt.Errorf("load %s: %w: %q", path, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return table, nil
}

func readCSV(r io.Reader) (*models.Table, error) {
	bufReader := bufio.NewReaderSize(r, 256*1024)

	// Skip UTF-8 BOM if present
	if bom, err := bufReader.Peek(3); err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		bufReader.Discard(3)
	}

	reader := csv.NewReader(bufReader)
	reader.Comma = SEPARATOR
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read header: %w", ErrNoHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		records = append(records, record)
	}
	return newTable(header, records)
}

func readXLSX(r io.Reader) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx: %w", ErrNoHeader)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s: %w", sheets[0], ErrNoHeader)
	}
	return newTable(rows[0], rows[1:])
}

func readParquet(r io.Reader) (*models.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}

	pf, err := parquet.OpenFile(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	fields := pf.Schema().Fields()
	if len(fields) == 0 {
		return nil, fmt.Errorf("parquet schema: %w", ErrNoHeader)
	}
	header := make([]string, len(fields))
	for i, field := range fields {
		if !field.Leaf() || field.Repeated() {
			return nil, fmt.Errorf("%w: nested parquet column %s", ErrUnsupportedFormat, field.Name())
		}
		header[i] = field.Name()
	}
	// column names come from the schema, no need to guess whether it is a header
	columns, err := mapColumns(AnalyzeHeaders(header).Headers)
	if err != nil {
		return nil, err
	}

	reader := parquet.NewReader(pf)
	defer reader.Close()

	table := &models.Table{
		Columns: columns,
		Rows:    make([]models.Row, 0, pf.NumRows()),
	}
	buf := make([]parquet.Row, 256)
	for {
		n, err := reader.ReadRows(buf)
		for _, values := range buf[:n] {
			table.Rows = append(table.Rows, parquetRow(values, len(columns)))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read parquet rows: %w", err)
		}
	}
	table.Types = inferColumnTypes(table)
	return table, nil
}

// parquetRow places every value by its column index. Columns without a
// value and null values become null cells.
func parquetRow(values parquet.Row, width int) models.Row {
	row := make(models.Row, width)
	for i := range row {
		row[i] = models.Cell{Null: true}
	}
	for _, v := range values {
		col := v.Column()
		if col < 0 || col >= width || v.IsNull() {
			continue
		}
		row[col] = parquetCell(v)
	}
	return row
}

func parquetCell(v parquet.Value) models.Cell {
	switch v.Kind() {
	case parquet.Float:
		f := float64(v.Float())
		if math.IsNaN(f) {
			return models.Cell{Null: true}
		}
		return models.Cell{Value: strconv.FormatFloat(f, 'f', -1, 32)}
	case parquet.Double:
		f := v.Double()
		if math.IsNaN(f) {
			return models.Cell{Null: true}
		}
		return models.Cell{Value: strconv.FormatFloat(f, 'f', -1, 64)}
	case parquet.ByteArray, parquet.FixedLenByteArray:
		// copy, the reader reuses its buffers
		return models.Cell{Value: string(v.ByteArray())}
	default:
		return models.Cell{Value: v.String()}
	}
}

// newTable checks the header, maps the expected columns to their canonical
// names and converts records into rows of cells.
func newTable(header []string, records [][]string) (*models.Table, error) {
	analysis := AnalyzeHeaders(header)
	if analysis == nil || analysis.LooksLikeRow {
		return nil, ErrNoHeader
	}
	columns, err := mapColumns(analysis.Headers)
	if err != nil {
		return nil, err
	}

	table := &models.Table{
		Columns: columns,
		Rows:    make([]models.Row, 0, len(records)),
	}
	for n, record := range records {
		row, err := toRow(record, len(columns))
		if err != nil {
			// +2: header is line 1, rows start on line 2
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		table.Rows = append(table.Rows, row)
	}
	table.Types = inferColumnTypes(table)
	return table, nil
}

// mapColumns renames the expected columns, matched on headerKey, to their
// canonical names. Other columns keep their cleaned names.
func mapColumns(columns []string) ([]string, error) {
	byKey := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := byKey[headerKey(c)]; !ok {
			byKey[headerKey(c)] = i
		}
	}
	for _, col := range requiredColumns {
		i, ok := byKey[headerKey(col)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
		columns[i] = col
	}
	return columns, nil
}

// toRow pads short records with nulls. Extra fields are only allowed when blank.
func toRow(record []string, width int) (models.Row, error) {
	if len(record) > width {
		for _, extra := range record[width:] {
			if strings.TrimSpace(extra) != "" {
				return nil, fmt.Errorf("%d fields, header has %d", len(record), width)
			}
		}
		record = record[:width]
	}
	row := make(models.Row, width)
	for i := range row {
		if i >= len(record) || isNull(record[i]) {
			row[i] = models.Cell{Null: true}
			continue
		}
		row[i] = models.Cell{Value: record[i]}
	}
	return row, nil
}

var typesWeight = []string{"", models.TypeInt64, models.TypeFloat64, models.TypeString}

func detectType(value string) string {
	value = strings.TrimSpace(value)
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return models.TypeInt64
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return models.TypeFloat64
	}
	return models.TypeString
}

// inferColumnTypes gives each column the heaviest type among its non-null cells.
func inferColumnTypes(t *models.Table) []string {
	types := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for n, cell := range row {
			if cell.Null || types[n] == models.TypeString {
				continue
			}
			current := detectType(cell.Value)
			if slices.Index(typesWeight, current) > slices.Index(typesWeight, types[n]) {
				types[n] = current
			}
		}
	}
	for i, typ := range types {
		if typ == "" {
			types[i] = models.TypeString
		}
	}
	return types
}
