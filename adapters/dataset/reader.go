package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"churnboard/internal"
	"churnboard/internal/errors"
)

// FileReader reads the churn dataset from CSV or Excel files into a RawTable.
type FileReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewFileReader creates a reader for the given path; the file type is chosen
// by extension, defaulting to xlsx for anything that is not .csv.
func NewFileReader(filePath string) *FileReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &FileReader{
		filePath: filePath,
		fileType: fileType,
		logger:   internal.DefaultLogger,
	}
}

// Read reads the source file once into structured form.
func (r *FileReader) Read() (*RawTable, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.DatasetErrorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, errors.DatasetErrorf("unsupported file type: %s", r.fileType)
	}
}

func (r *FileReader) readCSV() (*RawTable, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV file")
	}
	r.logger.Debug("[FileReader] CSV file read (%d rows)", len(rows))

	if len(rows) < 2 {
		return nil, errors.DatasetError("source must have at least a header row and one data row")
	}

	return r.processRows(rows)
}

func (r *FileReader) readExcel() (*RawTable, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open Excel file %s", r.filePath)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheet)
	}
	r.logger.Debug("[FileReader] Excel sheet %s read (%d rows)", sheet, len(rows))

	if len(rows) < 2 {
		return nil, errors.DatasetError("source must have at least a header row and one data row")
	}

	return r.processRows(rows)
}

// processRows converts raw string rows into RawTable form.
func (r *FileReader) processRows(rows [][]string) (*RawTable, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]RawRow, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(RawRow)
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	r.logger.Info(fmt.Sprintf("[FileReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows)))

	return &RawTable{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}
