// Package game holds the turn engine: the state machine that owns one board,
// its move history and the cursor while a single game is played.
package game

import (
	"fmt"

	"github.com/DevSlashRichie/tik-tak-toe/internal/apperror"
	"github.com/DevSlashRichie/tik-tak-toe/internal/entity"
	"github.com/DevSlashRichie/tik-tak-toe/internal/tictactoe"
)

type State int

const (
	StateAwaitingInput State = iota
	StateWon
	StateTied
)

func (that State) IsTerminal() bool {
	return that != StateAwaitingInput
}

type Engine struct {
	board   *entity.Board
	history *entity.History
	cursor  entity.Position
	state   State
	outcome entity.Outcome
	notice  error
}

func NewEngine() *Engine {
	return &Engine{
		board:   entity.NewBoard(),
		history: entity.NewHistory(),
		state:   StateAwaitingInput,
	}
}

// Apply runs one transition. Rejected placements are kept as a notice and do not
// return an error; a returned error means the engine cannot continue.
func (that *Engine) Apply(token tictactoe.Token) (State, error) {
	if that.state.IsTerminal() {
		return that.state, apperror.ErrGameFinished
	}

	switch token.Kind {
	case tictactoe.TokenMove:
		that.cursor = tictactoe.MoveCursor(that.cursor, token.Direction)
		that.notice = nil
	case tictactoe.TokenCommit:
		if err := that.commit(); err != nil {
			return that.state, err
		}
	case tictactoe.TokenIgnored:
	}

	return that.state, nil
}

func (that *Engine) commit() error {
	cell, err := that.board.Get(that.cursor)
	if err != nil {
		return fmt.Errorf("failed read cursor cell: %w", err)
	}

	if cell != entity.Empty {
		that.notice = apperror.ErrCellOccupied
		return nil
	}

	mark := that.NextMark()
	if err = that.board.Set(that.cursor, mark); err != nil {
		return fmt.Errorf("failed place mark: %w", err)
	}

	that.history.Append(entity.Move{Mark: mark, Row: that.cursor.Row, Col: that.cursor.Col})
	that.cursor = entity.Position{}
	that.notice = nil

	that.outcome = tictactoe.Evaluate(that.board)
	switch that.outcome.Status {
	case entity.Win:
		that.state = StateWon
	case entity.Tie:
		that.state = StateTied
	case entity.InProgress:
	}

	return nil
}

// NextMark is X on an empty history and the opponent of the last mover otherwise.
func (that *Engine) NextMark() entity.Mark {
	last, ok := that.history.Last()
	if !ok || last.Mark == entity.MarkO {
		return entity.MarkX
	}

	return entity.MarkO
}

func (that *Engine) State() State {
	return that.state
}

func (that *Engine) Outcome() entity.Outcome {
	return that.outcome
}

func (that *Engine) Cursor() entity.Position {
	return that.cursor
}

// Notice is the pending user-facing error of the last rejected placement, if any.
func (that *Engine) Notice() error {
	return that.notice
}

// Board returns a copy of the grid.
func (that *Engine) Board() entity.Board {
	return *that.board
}

func (that *Engine) History() *entity.History {
	return that.history
}

// Snapshot is everything a renderer needs for one tick.
type Snapshot struct {
	Board   entity.Board
	Cursor  entity.Position
	Turn    entity.Mark
	State   State
	Outcome entity.Outcome
	Notice  error
}

func (that *Engine) Snapshot() Snapshot {
	snapshot := Snapshot{
		Board:   *that.board,
		Cursor:  that.cursor,
		State:   that.state,
		Outcome: that.outcome,
		Notice:  that.notice,
	}

	if !that.state.IsTerminal() {
		snapshot.Turn = that.NextMark()
	}

	return snapshot
}
