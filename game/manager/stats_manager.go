package manager

import (
	"sort"
	"time"

	"github.com/NoDumas/CS3080-Project-Presentation/game/types"

	"github.com/google/uuid"
)

// GameRecord is one finished round.
type GameRecord struct {
	RoundID   string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Steps     int
	Outcome   types.TickResult
}

// Duration is how long the round ran.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager keeps the rounds played in this session. Nothing is
// written to disk.
type StatsManager struct {
	sessionID string
	startTime time.Time
	records   []GameRecord
	highScore int
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		sessionID: uuid.New().String(),
		startTime: time.Now(),
		records:   make([]GameRecord, 0),
	}
}

func (sm *StatsManager) SessionID() string {
	return sm.sessionID
}

func (sm *StatsManager) StartTime() time.Time {
	return sm.startTime
}

// Record adds a finished round.
func (sm *StatsManager) Record(rec GameRecord) {
	sm.records = append(sm.records, rec)
	if rec.Score > sm.highScore {
		sm.highScore = rec.Score
	}
}

func (sm *StatsManager) HighScore() int {
	return sm.highScore
}

func (sm *StatsManager) GamesPlayed() int {
	return len(sm.records)
}

// Records returns a copy of the recorded rounds, oldest first.
func (sm *StatsManager) Records() []GameRecord {
	out := make([]GameRecord, len(sm.records))
	copy(out, sm.records)
	return out
}

func (sm *StatsManager) AverageScore() float64 {
	if len(sm.records) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.records {
		total += r.Score
	}
	return float64(total) / float64(len(sm.records))
}

func (sm *StatsManager) MedianScore() float64 {
	if len(sm.records) == 0 {
		return 0
	}
	scores := make([]int, len(sm.records))
	for i, r := range sm.records {
		scores[i] = r.Score
	}
	sort.Ints(scores)

	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (sm *StatsManager) AverageDuration() time.Duration {
	if len(sm.records) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range sm.records {
		total += r.Duration()
	}
	return total / time.Duration(len(sm.records))
}
