package mappy

import (
	"errors"
	"fmt"
	"math/rand"
)

// Cell is one slot of a level grid.
type Cell int

const (
	CellVoid Cell = iota
	CellPlatform
	CellTrampoline
)

// Door markers in a door grid.
const (
	DoorNone = iota
	DoorPlain
	DoorSpecial
)

// ErrLayoutExhausted is returned when a grid cannot hold the required
// number of items or doors.
var ErrLayoutExhausted = errors.New("mappy: layout placement exhausted")

const (
	maxPlacementSweeps = 500
	itemChance         = 0.2
	doorChance         = 0.1
	specialDoorChance  = 0.2
	minDoors           = 5
)

// Layout is a generated round: the structure grid plus the item and door
// grids laid over it. All three share dimensions.
type Layout struct {
	Cells [][]Cell
	Items [][]int
	Doors [][]int
}

// Rows returns the number of grid rows.
func (l Layout) Rows() int { return len(l.Cells) }

// Cols returns the number of grid columns.
func (l Layout) Cols() int {
	if len(l.Cells) == 0 {
		return 0
	}
	return len(l.Cells[0])
}

// templates are the building layouts rounds cycle through, one string per
// floor from the roof down:
//
//	'#' = platform
//	'.' = open shaft
//	'T' = trampoline
var templates = [4][]string{
	{
		"#.##.###",
		"#.##.###",
		"#.##.###",
		"#.##.###",
		"#.##.###",
		"#.##.###",
		"#T##T###",
	},
	{
		"#.#.##.##",
		"#.#.##.##",
		"#.#.##.##",
		"#.#.##.##",
		"#.#.##.##",
		"#.#.##.##",
		"#T#T##T##",
	},
	{
		"##.##.#.##",
		"##.##.#.##",
		"##.##.#.##",
		"##.##.#.##",
		"##.##.#.##",
		"##.##.#.##",
		"##T##T#T##",
	},
	{
		"#.##.##.##",
		"#.##.##.##",
		"#.##.##.##",
		"#.##T##.##",
		"#.#####.##",
		"#.#####.##",
		"#T#####T##",
	},
}

// ParseGrid converts template rows into cells. Unknown characters are void.
func ParseGrid(lines []string) [][]Cell {
	cells := make([][]Cell, len(lines))
	for i, line := range lines {
		cells[i] = make([]Cell, len(line))
		for j, ch := range line {
			switch ch {
			case '#':
				cells[i][j] = CellPlatform
			case 'T':
				cells[i][j] = CellTrampoline
			default:
				cells[i][j] = CellVoid
			}
		}
	}
	return cells
}

// IsBonusRound reports whether round is one of the reserved bonus rounds.
// Bonus rounds have no layout and are skipped.
func IsBonusRound(round int) bool {
	return round%4 == 3
}

// NextRound returns the round after n, wrapping at MaxRound and skipping
// bonus rounds.
func NextRound(n int) int {
	n = n%MaxRound + 1
	for IsBonusRound(n) {
		n = n%MaxRound + 1
	}
	return n
}

// TemplateFor maps a round number to its layout template.
func TemplateFor(round int) (int, bool) {
	switch {
	case 1 <= round && round <= 2, 16 <= round && round <= 18:
		return 0, true
	case 4 <= round && round <= 6, 20 <= round && round <= 22:
		return 1, true
	case 8 <= round && round <= 10, 24 <= round && round <= 26:
		return 2, true
	case 12 <= round && round <= 14, 28 <= round && round <= 30:
		return 3, true
	}
	return 0, false
}

// Template returns the structure grid with the given index.
func Template(index int) [][]Cell {
	return ParseGrid(templates[index])
}

// GenerateLayout picks the round's template and scatters items and doors
// over it.
func GenerateLayout(round int, rng *rand.Rand) (Layout, error) {
	idx, ok := TemplateFor(round)
	if !ok {
		return Layout{}, fmt.Errorf("mappy: round %d has no layout", round)
	}
	cells := Template(idx)

	items, err := PlaceItems(cells, rng)
	if err != nil {
		return Layout{}, fmt.Errorf("mappy: items for round %d: %w", round, err)
	}
	doors, err := PlaceDoors(cells, rng)
	if err != nil {
		return Layout{}, fmt.Errorf("mappy: doors for round %d: %w", round, err)
	}
	return Layout{Cells: cells, Items: items, Doors: doors}, nil
}

func newGrid(rows, cols int) [][]int {
	g := make([][]int, rows)
	for i := range g {
		g[i] = make([]int, cols)
	}
	return g
}

// PlaceItems puts two items of each type on platform cells, avoiding the
// roof row, the ground row and the second to last column.
func PlaceItems(cells [][]Cell, rng *rand.Rand) ([][]int, error) {
	rows := len(cells)
	if rows == 0 {
		return nil, ErrLayoutExhausted
	}
	cols := len(cells[0])
	items := newGrid(rows, cols)

	var counts [ItemTypes + 1]int
	placed := 0
	for sweep := 0; sweep < maxPlacementSweeps; sweep++ {
		for i := 1; i < rows-1; i++ {
			for j := 0; j < cols; j++ {
				if cells[i][j] != CellPlatform || j == cols-2 || items[i][j] != 0 {
					continue
				}
				if rng.Float64() >= itemChance {
					continue
				}
				kind := rng.Intn(ItemTypes) + 1
				if counts[kind] < itemsPerType {
					items[i][j] = kind
					counts[kind]++
					placed++
				}
			}
		}
		if placed == ItemTypes*itemsPerType {
			return items, nil
		}
	}
	return nil, ErrLayoutExhausted
}

// PlaceDoors marks at least minDoors distinct platform cells as doors, at
// most one per row per sweep, never on the roof row or the outer columns.
func PlaceDoors(cells [][]Cell, rng *rand.Rand) ([][]int, error) {
	rows := len(cells)
	if rows == 0 {
		return nil, ErrLayoutExhausted
	}
	cols := len(cells[0])
	doors := newGrid(rows, cols)

	placed := 0
	for sweep := 0; sweep < maxPlacementSweeps; sweep++ {
		for i := 1; i < rows; i++ {
			for j := 1; j < cols-1; j++ {
				if cells[i][j] != CellPlatform || doors[i][j] != DoorNone {
					continue
				}
				if rng.Float64() >= doorChance {
					continue
				}
				doors[i][j] = DoorPlain
				if rng.Float64() < specialDoorChance {
					doors[i][j] = DoorSpecial
				}
				placed++
				break
			}
		}
		if placed >= minDoors {
			return doors, nil
		}
	}
	return nil, ErrLayoutExhausted
}
