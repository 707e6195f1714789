package core

import "time"

// ScoreRecord is one row of the persisted score table.
type ScoreRecord struct {
	Name      string
	Score     int
	Round     int
	RunID     string
	CreatedAt time.Time
}

// Progress is a saved game that can be resumed from the title screen.
// Level is -1 when nothing is saved.
type Progress struct {
	Level int
	Score int
	Lives int
}

// NoProgress is the value used when no saved game exists.
var NoProgress = Progress{Level: -1}

// Store persists scores and progress outside the simulation.
// Implementations must be safe to call from the tick loop.
type Store interface {
	SaveScore(rec ScoreRecord) error
	TopScores(limit int) ([]ScoreRecord, error)
	SaveProgress(p Progress) error
	LoadProgress() (Progress, error)
}

// Persistent is implemented by games that read and write a Store.
type Persistent interface {
	AttachStore(s Store)
}
