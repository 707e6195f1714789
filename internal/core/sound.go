package core

// Sound identifies a one-shot audio cue emitted by a game.
type Sound int

const (
	SoundRoundStart Sound = iota
	SoundMiss
	SoundClear
	SoundGameOver
	SoundBounce
	SoundPickup
	SoundNameEntry
)

func (s Sound) String() string {
	switch s {
	case SoundRoundStart:
		return "round-start"
	case SoundMiss:
		return "miss"
	case SoundClear:
		return "clear"
	case SoundGameOver:
		return "game-over"
	case SoundBounce:
		return "bounce"
	case SoundPickup:
		return "pickup"
	case SoundNameEntry:
		return "name-entry"
	default:
		return "unknown"
	}
}
