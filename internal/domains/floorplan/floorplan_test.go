package floorplan_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reservo/internal/domains/floorplan"
	"reservo/internal/domains/reservation/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plan = `
sectors:
  - id: main
    name: Main room
    color: "#c0392b"
    tables:
      - id: T1
        name: Window
        capacity: {min: 1, max: 2}
      - id: T2
        name: Booth
        capacity: {min: 2, max: 6}
        sort_order: 10
  - id: terrace
    name: Terrace
    sort_order: 5
    tables:
      - id: T3
        name: Olive
        capacity: {min: 2, max: 4}
`

func TestDecode(t *testing.T) {
	res, err := floorplan.Decode(strings.NewReader(plan))

	require.NoError(t, err)
	require.Len(t, res.Sectors, 2)
	require.Len(t, res.Tables, 3)

	assert.Equal(t, "Main room", res.Sectors[0].Name)
	assert.Equal(t, 0, res.Sectors[0].SortOrder)
	assert.Equal(t, 5, res.Sectors[1].SortOrder)

	assert.Equal(t, "main", res.Tables[0].SectorID)
	assert.Equal(t, 0, res.Tables[0].SortOrder)
	assert.Equal(t, 10, res.Tables[1].SortOrder)
	assert.Equal(t, 2, res.Tables[2].SortOrder)
	assert.Equal(t, "terrace", res.Tables[2].SectorID)
	assert.Equal(t, 6, res.Tables[1].Capacity.Max)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{
			name: "duplicate table",
			doc:  "sectors:\n  - id: a\n    tables:\n      - {id: T1, capacity: {min: 1, max: 2}}\n      - {id: T1, capacity: {min: 1, max: 2}}\n",
			err:  floorplan.ErrDuplicateTable,
		},
		{
			name: "inverted capacity",
			doc:  "sectors:\n  - id: a\n    tables:\n      - {id: T1, capacity: {min: 4, max: 2}}\n",
			err:  floorplan.ErrCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := floorplan.Decode(strings.NewReader(tt.doc))

			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := floorplan.Decode(strings.NewReader("sectors: [\n"))

		assert.Error(t, err)
	})

	t.Run("empty document", func(t *testing.T) {
		res, err := floorplan.Decode(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, res.Tables)
	})
}

func TestLoadAndSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "floor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o600))

	res, err := floorplan.Load(path)
	require.NoError(t, err)

	reservations := []dto.ReservationPayload{{ID: "R1", TableID: "T1", PartySize: 2, StartTime: "2025-03-15T19:00", DurationMinutes: 90}}
	snapshot := res.Snapshot(reservations)

	assert.Equal(t, reservations, snapshot.Reservations)
	require.Len(t, snapshot.Tables, 3)
	assert.Equal(t, dto.TablePayload{ID: "T2", SectorID: "main", Name: "Booth", MinCapacity: 2, MaxCapacity: 6, SortOrder: 10}, snapshot.Tables[1])
	assert.Equal(t, dto.SectorPayload{ID: "main", Name: "Main room", Color: "#c0392b", SortOrder: 0}, snapshot.Sectors[0])

	_, err = floorplan.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
