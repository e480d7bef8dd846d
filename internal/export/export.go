// Package export renders accumulated attendance totals as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"connect/tally/internal/logging"
	"connect/tally/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter used for CSV output. Configurable via the CSV_DELIMITER
// environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// TotalRow is one line of the totals CSV.
type TotalRow struct {
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
	Field       string `csv:"Field"`
	Count       int    `csv:"Count"`
}

// Options controls which rows the totals export includes.
type Options struct {
	// IncludeZeroRows keeps fields with a zero total in the output.
	IncludeZeroRows bool
}

// Rows flattens parse totals into CSV rows in form order, ending with a
// grand-total row.
func Rows(result *models.ParseResult, opts Options) []TotalRow {
	rows := make([]TotalRow, 0, len(models.Fields())+1)
	for _, f := range models.Fields() {
		count := result.Totals[f.ID]
		if count == 0 && !opts.IncludeZeroRows {
			continue
		}
		rows = append(rows, TotalRow{
			Category:    f.Category,
			Description: f.Description,
			Field:       string(f.ID),
			Count:       count,
		})
	}
	rows = append(rows, TotalRow{
		Category:    "Total",
		Description: "Soma geral",
		Field:       "total",
		Count:       result.Total(),
	})
	return rows
}

// WriteTotals writes the totals CSV to w.
func WriteTotals(w io.Writer, result *models.ParseResult, opts Options) error {
	if result == nil {
		return fmt.Errorf("cannot export nil parse result")
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(Rows(result, opts), gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteTotalsFile writes the totals CSV to csvFile, creating parent
// directories as needed.
func WriteTotalsFile(result *models.ParseResult, csvFile string, opts Options) error {
	if result == nil {
		return fmt.Errorf("cannot export nil parse result")
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(result.Totals)},
	).Info("Writing attendance totals to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteTotals(file, result, opts); err != nil {
		log.WithError(err).Error("Failed to marshal totals to CSV")
		return err
	}

	log.WithField(logging.FieldFile, csvFile).Info("Successfully wrote totals CSV file")
	return nil
}
