package parser_test

import (
	"strings"
	"testing"

	"reservo/internal/domains/importer/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `Name, Party_Size, Date, Time, Duration, Table, VIP, Notes
Ana,2,2025-03-15,19:00,,T1,yes,window please

Bruno,four,2025-03-15,20:00,90,,,
Carla,6,2025-03-15,21:00,abc,,maybe,
`

	rows, err := parser.Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 3)

	ana := rows[0]
	assert.Equal(t, 2, ana.Line)
	assert.Equal(t, "Ana", ana.Name)
	assert.Equal(t, 2, ana.PartySize)
	assert.Equal(t, "2025-03-15", ana.Date)
	assert.Equal(t, "19:00", ana.Time)
	assert.Zero(t, ana.DurationMinutes)
	assert.Equal(t, "T1", ana.Table)
	assert.True(t, ana.VIP)
	assert.Equal(t, "window please", ana.Notes)
	assert.Empty(t, ana.Invalid)

	bruno := rows[1]
	assert.Equal(t, 4, bruno.Line)
	assert.Equal(t, 90, bruno.DurationMinutes)
	assert.Equal(t, "party_size is not a number", bruno.Invalid)

	carla := rows[2]
	assert.Equal(t, 5, carla.Line)
	assert.Equal(t, "duration is not a number; vip must be yes/no", carla.Invalid)
}

func TestParseErrors(t *testing.T) {
	_, err := parser.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, parser.ErrEmpty)

	_, err = parser.Parse(strings.NewReader("name,party_size,date\nAna,2,2025-03-15\n"))
	assert.ErrorIs(t, err, parser.ErrMissingColumn)
	assert.Contains(t, err.Error(), "time")

	_, err = parser.Parse(strings.NewReader("name,party_size,date,time\n\"Ana,2,2025-03-15,19:00\n"))
	assert.Error(t, err)
}

func TestParseHeaderOnly(t *testing.T) {
	rows, err := parser.Parse(strings.NewReader("name,party_size,date,time\n"))

	require.NoError(t, err)
	assert.Empty(t, rows)
}
