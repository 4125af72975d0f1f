package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const recordTimeLayout = "2006-01-02 15:04:05"

// Record is the archived summary of one finished game.
type Record struct {
	ID       string    `json:"id"`
	PlayedAt time.Time `json:"played_at"`
	Players  Players   `json:"players"`
	Outcome  Outcome   `json:"outcome"`
	Moves    []Move    `json:"moves"`
}

func NewRecord(history *History, players Players, outcome Outcome, playedAt time.Time) *Record {
	return &Record{
		ID:       uuid.NewString(),
		PlayedAt: playedAt,
		Players:  players,
		Outcome:  outcome,
		Moves:    history.Moves(),
	}
}

// Serialize renders the record as a text block meant to be appended to a log.
func (that *Record) Serialize() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "==== Game %s ====\n", that.ID)
	fmt.Fprintf(&sb, "Date: %s\n", that.PlayedAt.Format(recordTimeLayout))
	fmt.Fprintf(&sb, "%s: %s\n", MarkX, that.Players.First)
	fmt.Fprintf(&sb, "%s: %s\n", MarkO, that.Players.Second)
	fmt.Fprintf(&sb, "Result: %s\n", that.result())
	sb.WriteString("Moves:\n")

	for i, move := range that.Moves {
		fmt.Fprintf(&sb, "  %d. %s %s\n", i+1, move.Mark, move.Position())
	}

	sb.WriteString("\n")

	return sb.String()
}

func (that *Record) result() string {
	switch that.Outcome.Status {
	case Win:
		return fmt.Sprintf("%s (%s) wins", that.Players.NameOf(that.Outcome.Winner), that.Outcome.Winner)
	case Tie:
		return "Tie"
	default:
		return "Unfinished"
	}
}
