package mappy

import "github.com/vovakirdan/tui-mappy/internal/core"

// Item types. The type doubles as the score multiplier of the loot.
const (
	ItemRadio = iota + 1
	ItemTV
	ItemComputer
	ItemPainting
	ItemSafe

	ItemTypes    = ItemSafe
	itemsPerType = 2
)

const blinkTicks = 10

// Item is a piece of loot standing on a platform.
type Item struct {
	Rect    core.Rect
	Type    int
	Visible bool

	blink int
}

// NewItem creates an item whose bottom-right corner is at (right, bottom).
func NewItem(right, bottom, itemType int) Item {
	it := Item{
		Rect:    core.NewRect(0, 0, ItemSize, ItemSize),
		Type:    itemType,
		Visible: true,
	}
	it.Rect.SetBottomRight(right, bottom)
	return it
}

// Bounds implements Sprite.
func (it *Item) Bounds() core.Rect { return it.Rect }

// Shift implements Sprite.
func (it *Item) Shift(dx int) { it.Rect.X += dx }

// Touches reports whether the actor's center is over the item.
func (it *Item) Touches(a *Actor) bool {
	return it.Rect.Contains(a.Rect.Center())
}

// Value is the base score of the item.
func (it *Item) Value() int {
	return it.Type * BaseItemScore
}

func (it *Item) startBlinking() {
	it.blink++
	if it.blink%blinkTicks == 0 {
		it.Visible = !it.Visible
		it.blink = 0
	}
}

func (it *Item) stopBlinking() {
	it.Visible = true
	it.blink = 0
}

// PairTracker follows which loot type the player is chasing. Picking the
// targeted type again extends the streak and raises the multiplier.
type PairTracker struct {
	Target int
	Streak bool
	Pairs  int
}

// NewPairTracker returns a tracker with no target.
func NewPairTracker() PairTracker {
	return PairTracker{Target: -1, Streak: true}
}

// Collect records a pickup of itemType and returns the score it earns.
func (p *PairTracker) Collect(itemType int) int {
	base := itemType * BaseItemScore
	if itemType == p.Target {
		p.Streak = true
		p.Pairs++
	} else {
		p.Target = itemType
		p.Streak = false
	}
	if p.Streak {
		return base * (p.Pairs + 1)
	}
	return base
}
