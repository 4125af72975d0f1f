package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownOutcome = errors.New("unknown outcome")

type OutcomeStatus int

const (
	InProgress OutcomeStatus = iota
	Win
	Tie
)

// Outcome is derived from a board, never stored on it.
type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Winner Mark          `json:"winner,omitempty"`
}

func WinOf(mark Mark) Outcome {
	return Outcome{Status: Win, Winner: mark}
}

func TieOutcome() Outcome {
	return Outcome{Status: Tie}
}

func (that Outcome) IsTerminal() bool {
	return that.Status != InProgress
}

func (that Outcome) String() string {
	switch that.Status {
	case Win:
		return fmt.Sprintf("%s wins", that.Winner)
	case Tie:
		return "tie"
	default:
		return "in progress"
	}
}

func (that OutcomeStatus) MarshalText() ([]byte, error) {
	switch that {
	case Win:
		return []byte("win"), nil
	case Tie:
		return []byte("tie"), nil
	default:
		return []byte("in-progress"), nil
	}
}

func (that *OutcomeStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "win":
		*that = Win
	case "tie":
		*that = Tie
	case "in-progress":
		*that = InProgress
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, text)
	}

	return nil
}
