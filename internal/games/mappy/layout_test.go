package mappy

import (
	"errors"
	"math/rand"
	"testing"
)

func TestTemplateFor(t *testing.T) {
	tests := []struct {
		round    int
		template int
		ok       bool
	}{
		{1, 0, true},
		{2, 0, true},
		{3, 0, false},
		{4, 1, true},
		{7, 0, false},
		{10, 2, true},
		{13, 3, true},
		{16, 0, true},
		{18, 0, true},
		{19, 0, false},
		{22, 1, true},
		{26, 2, true},
		{30, 3, true},
		{0, 0, false},
		{31, 0, false},
	}

	for _, tt := range tests {
		got, ok := TemplateFor(tt.round)
		if ok != tt.ok || (ok && got != tt.template) {
			t.Errorf("TemplateFor(%d) = (%d, %v), expected (%d, %v)", tt.round, got, ok, tt.template, tt.ok)
		}
	}
}

func TestNextRound(t *testing.T) {
	tests := []struct {
		round, expected int
	}{
		{1, 2},
		{2, 4},
		{6, 8},
		{14, 16},
		{15, 16},
		{18, 20},
		{29, 30},
		{30, 1},
	}

	for _, tt := range tests {
		if got := NextRound(tt.round); got != tt.expected {
			t.Errorf("NextRound(%d) = %d, expected %d", tt.round, got, tt.expected)
		}
	}
}

func TestEveryPlayableRoundHasTemplate(t *testing.T) {
	round := 1
	for i := 0; i < MaxRound; i++ {
		if IsBonusRound(round) {
			t.Fatalf("NextRound reached bonus round %d", round)
		}
		if _, ok := TemplateFor(round); !ok {
			t.Errorf("TemplateFor(%d) has no template", round)
		}
		round = NextRound(round)
	}
}

func TestTemplatesAreRectangular(t *testing.T) {
	for i := range templates {
		cells := Template(i)
		if len(cells) == 0 {
			t.Fatalf("template %d is empty", i)
		}
		for r, row := range cells {
			if len(row) != len(cells[0]) {
				t.Errorf("template %d row %d has %d cells, expected %d", i, r, len(row), len(cells[0]))
			}
		}
		for c, cell := range cells[0] {
			if cell == CellTrampoline {
				t.Errorf("template %d has a trampoline on the roof at column %d", i, c)
			}
		}
	}
}

func TestParseGrid(t *testing.T) {
	cells := ParseGrid([]string{"#.T", "?##"})
	expected := [][]Cell{
		{CellPlatform, CellVoid, CellTrampoline},
		{CellVoid, CellPlatform, CellPlatform},
	}
	for r := range expected {
		for c := range expected[r] {
			if cells[r][c] != expected[r][c] {
				t.Errorf("cell (%d, %d) = %v, expected %v", r, c, cells[r][c], expected[r][c])
			}
		}
	}
}

func TestGenerateLayout(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		layout, err := GenerateLayout(1, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: GenerateLayout() error = %v", seed, err)
		}
		rows, cols := layout.Rows(), layout.Cols()

		counts := map[int]int{}
		doors := 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if kind := layout.Items[r][c]; kind != 0 {
					counts[kind]++
					if r == 0 || r == rows-1 || c == cols-2 {
						t.Errorf("seed %d: item at forbidden cell (%d, %d)", seed, r, c)
					}
					if layout.Cells[r][c] != CellPlatform {
						t.Errorf("seed %d: item at (%d, %d) is not on a platform", seed, r, c)
					}
				}
				if layout.Doors[r][c] != DoorNone {
					doors++
					if r == 0 || c == 0 || c == cols-1 {
						t.Errorf("seed %d: door at forbidden cell (%d, %d)", seed, r, c)
					}
					if layout.Cells[r][c] != CellPlatform {
						t.Errorf("seed %d: door at (%d, %d) is not on a platform", seed, r, c)
					}
				}
			}
		}

		for kind := 1; kind <= ItemTypes; kind++ {
			if counts[kind] != itemsPerType {
				t.Errorf("seed %d: %d items of type %d, expected %d", seed, counts[kind], kind, itemsPerType)
			}
		}
		if doors < minDoors {
			t.Errorf("seed %d: %d doors, expected at least %d", seed, doors, minDoors)
		}
	}
}

func TestGenerateLayoutBonusRound(t *testing.T) {
	if _, err := GenerateLayout(3, rand.New(rand.NewSource(1))); err == nil {
		t.Error("GenerateLayout(3) error = nil, expected an error")
	}
}

func TestPlacementExhausted(t *testing.T) {
	void := ParseGrid([]string{"....", "....", "....", "...."})
	rng := rand.New(rand.NewSource(1))

	if _, err := PlaceItems(void, rng); !errors.Is(err, ErrLayoutExhausted) {
		t.Errorf("PlaceItems() error = %v, expected %v", err, ErrLayoutExhausted)
	}
	if _, err := PlaceDoors(void, rng); !errors.Is(err, ErrLayoutExhausted) {
		t.Errorf("PlaceDoors() error = %v, expected %v", err, ErrLayoutExhausted)
	}
	if _, err := PlaceItems(nil, rng); !errors.Is(err, ErrLayoutExhausted) {
		t.Errorf("PlaceItems(nil) error = %v, expected %v", err, ErrLayoutExhausted)
	}
}
