// Package floorplan loads sectors and tables from a YAML document:
//
//	sectors:
//	  - id: terrace
//	    name: Terrace
//	    tables:
//	      - id: T1
//	        name: Table 1
//	        capacity: {min: 2, max: 4}
//
// Sort orders default to the position in the file.
package floorplan

import (
	"errors"
	"fmt"
	"io"
	"os"

	"reservo/internal/domains/reservation/model"
	"reservo/internal/domains/reservation/model/dto"

	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateTable = errors.New("duplicate table id")
	ErrCapacity       = errors.New("table capacity must satisfy 0 <= min <= max")
)

type document struct {
	Sectors []sectorDoc `yaml:"sectors"`
}

type sectorDoc struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name"`
	Color     string     `yaml:"color"`
	SortOrder *int       `yaml:"sort_order"`
	Tables    []tableDoc `yaml:"tables"`
}

type tableDoc struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Capacity struct {
		Min int `yaml:"min"`
		Max int `yaml:"max"`
	} `yaml:"capacity"`
	SortOrder *int `yaml:"sort_order"`
}

type FloorPlan struct {
	Sectors []model.Sector
	Tables  []model.Table
}

func Load(path string) (FloorPlan, error) {
	file, err := os.Open(path)
	if err != nil {
		return FloorPlan{}, fmt.Errorf("open floor plan: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

func Decode(r io.Reader) (FloorPlan, error) {
	var doc document

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return FloorPlan{}, fmt.Errorf("decode floor plan: %w", err)
	}

	plan := FloorPlan{}
	seen := map[string]bool{}
	order := 0

	for i, sector := range doc.Sectors {
		plan.Sectors = append(plan.Sectors, model.Sector{
			ID:        sector.ID,
			Name:      sector.Name,
			Color:     sector.Color,
			SortOrder: orDefault(sector.SortOrder, i),
		})

		for _, table := range sector.Tables {
			if seen[table.ID] {
				return FloorPlan{}, fmt.Errorf("%w: %s", ErrDuplicateTable, table.ID)
			}

			if table.Capacity.Min < 0 || table.Capacity.Min > table.Capacity.Max {
				return FloorPlan{}, fmt.Errorf("%w: %s", ErrCapacity, table.ID)
			}

			seen[table.ID] = true

			plan.Tables = append(plan.Tables, model.Table{
				ID:        table.ID,
				SectorID:  sector.ID,
				Name:      table.Name,
				Capacity:  model.Capacity{Min: table.Capacity.Min, Max: table.Capacity.Max},
				SortOrder: orDefault(table.SortOrder, order),
			})
			order++
		}
	}

	return plan, nil
}

func orDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}

	return *value
}

// Snapshot pairs the floor plan with a set of reservations in request form.
func (p FloorPlan) Snapshot(reservations []dto.ReservationPayload) dto.Snapshot {
	snapshot := dto.Snapshot{
		Reservations: reservations,
		Tables:       make([]dto.TablePayload, len(p.Tables)),
		Sectors:      make([]dto.SectorPayload, len(p.Sectors)),
	}

	for i, table := range p.Tables {
		snapshot.Tables[i] = dto.TablePayload{
			ID:          table.ID,
			SectorID:    table.SectorID,
			Name:        table.Name,
			MinCapacity: table.Capacity.Min,
			MaxCapacity: table.Capacity.Max,
			SortOrder:   table.SortOrder,
		}
	}

	for i, sector := range p.Sectors {
		snapshot.Sectors[i] = dto.SectorPayload{
			ID:        sector.ID,
			Name:      sector.Name,
			Color:     sector.Color,
			SortOrder: sector.SortOrder,
		}
	}

	return snapshot
}
