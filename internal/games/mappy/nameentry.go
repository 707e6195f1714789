package mappy

import (
	"sort"

	"github.com/vovakirdan/tui-mappy/internal/core"
)

const (
	nameLength  = 3
	blankLetter = '.'
	topEntries  = 5
)

// NameEntry is the three-letter initials editor shown after a game over,
// together with the top of the score table the new entry would land in.
type NameEntry struct {
	Score int
	Round int

	// Top is the best scores including the pending entry.
	Top []core.ScoreRecord
	// InTop reports whether the pending entry made it into Top.
	InTop bool

	name [nameLength]byte
	slot int
}

// NewNameEntry starts a blank entry for the given result.
func NewNameEntry(score, round int) *NameEntry {
	e := &NameEntry{Score: score, Round: round}
	for i := range e.name {
		e.name[i] = blankLetter
	}
	return e
}

// Name returns the initials typed so far.
func (e *NameEntry) Name() string {
	return string(e.name[:])
}

// Slot returns the index of the letter being edited.
func (e *NameEntry) Slot() int {
	return e.slot
}

// MoveSlot selects the previous (d < 0) or next (d > 0) letter, wrapping.
func (e *NameEntry) MoveSlot(d int) {
	e.slot = ((e.slot+d)%nameLength + nameLength) % nameLength
}

// CycleLetter steps the selected letter through A-Z. A blank slot counts as A.
func (e *NameEntry) CycleLetter(d int) {
	idx := 0
	if c := e.name[e.slot]; c >= 'A' && c <= 'Z' {
		idx = int(c - 'A')
	}
	idx = ((idx+d)%26 + 26) % 26
	e.name[e.slot] = byte('A' + idx)
}

// Complete reports whether every slot holds a letter.
func (e *NameEntry) Complete() bool {
	for _, c := range e.name {
		if c == blankLetter {
			return false
		}
	}
	return true
}

// Record returns the entry as a score row.
func (e *NameEntry) Record(runID string) core.ScoreRecord {
	return core.ScoreRecord{
		Name:  e.Name(),
		Score: e.Score,
		Round: e.Round,
		RunID: runID,
	}
}

// Rank merges the pending entry into prev and keeps the best five, ordered
// by score then round, both descending.
func (e *NameEntry) Rank(prev []core.ScoreRecord) {
	combined := make([]core.ScoreRecord, 0, len(prev)+1)
	combined = append(combined, prev...)
	combined = append(combined, e.Record(""))

	sort.SliceStable(combined, func(i, j int) bool {
		if combined[i].Score != combined[j].Score {
			return combined[i].Score > combined[j].Score
		}
		return combined[i].Round > combined[j].Round
	})

	if len(combined) > topEntries {
		combined = combined[:topEntries]
	}
	e.Top = combined

	e.InTop = false
	for _, r := range e.Top {
		if r.Name == e.Name() && r.Score == e.Score {
			e.InTop = true
			break
		}
	}
}
