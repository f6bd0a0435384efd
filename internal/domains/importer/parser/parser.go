// Package parser reads reservation rows from CSV text. The first record is a
// header; columns are matched by name, ignoring case and surrounding spaces.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reservo/internal/domains/importer/model"
)

const (
	ColumnName      = "name"
	ColumnPhone     = "phone"
	ColumnEmail     = "email"
	ColumnPartySize = "party_size"
	ColumnDate      = "date"
	ColumnTime      = "time"
	ColumnDuration  = "duration"
	ColumnTable     = "table"
	ColumnSector    = "sector"
	ColumnVIP       = "vip"
	ColumnNotes     = "notes"
)

var (
	ErrEmpty         = errors.New("csv has no header row")
	ErrMissingColumn = errors.New("csv is missing a required column")
)

var requiredColumns = []string{ColumnName, ColumnPartySize, ColumnDate, ColumnTime}

// Parse returns one Row per data record. Values that cannot be converted do
// not abort the parse; the row is returned with Invalid set instead.
func Parse(r io.Reader) ([]model.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}

	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	rows := []model.Row{}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		if blank(record) {
			continue
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, toRow(line, record, columns))
	}

	return rows, nil
}

func toRow(line int, record []string, columns map[string]int) model.Row {
	get := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[idx])
	}

	row := model.Row{
		Line:   line,
		Name:   get(ColumnName),
		Phone:  get(ColumnPhone),
		Email:  get(ColumnEmail),
		Date:   get(ColumnDate),
		Time:   get(ColumnTime),
		Table:  get(ColumnTable),
		Sector: get(ColumnSector),
		Notes:  get(ColumnNotes),
	}

	var problems []string

	party, err := strconv.Atoi(get(ColumnPartySize))
	if err != nil {
		problems = append(problems, "party_size is not a number")
	}

	row.PartySize = party

	if value := get(ColumnDuration); value != "" {
		duration, err := strconv.Atoi(value)
		if err != nil {
			problems = append(problems, "duration is not a number")
		}

		row.DurationMinutes = duration
	}

	if value := get(ColumnVIP); value != "" {
		vip, err := parseFlag(value)
		if err != nil {
			problems = append(problems, "vip must be yes/no")
		}

		row.VIP = vip
	}

	row.Invalid = strings.Join(problems, "; ")

	return row
}

func parseFlag(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "y", "yes", "x":
		return true, nil
	case "n", "no":
		return false, nil
	}

	return strconv.ParseBool(value) //nolint:wrapcheck
}

func blank(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}

	return true
}
