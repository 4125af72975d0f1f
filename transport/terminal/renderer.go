package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DevSlashRichie/tik-tak-toe/internal/apperror"
	"github.com/DevSlashRichie/tik-tak-toe/internal/entity"
	"github.com/DevSlashRichie/tik-tak-toe/internal/game"
	"github.com/charmbracelet/lipgloss"
)

const (
	clearScreenSequence = "\033c"
	rowSeparator        = "-----------"
	controlsHelp        = "Move: w/a/s/d   Place: p"
	menuText            = "[p] play again   [n] new players   [q] quit"
	welcomeText         = "Welcome to Tik Tak Toe"
)

type styles struct {
	cursor lipgloss.Style
	title  lipgloss.Style
	notice lipgloss.Style
	result lipgloss.Style
	help   lipgloss.Style
}

// Renderer draws frames to out. Styling is dropped when color is off or out is not a terminal.
type Renderer struct {
	out         io.Writer
	color       bool
	clearScreen bool
	styles      styles
}

func NewRenderer(out io.Writer, color, clearScreen bool) *Renderer {
	renderer := lipgloss.NewRenderer(out)

	return &Renderer{
		out:         out,
		color:       color,
		clearScreen: clearScreen,
		styles: styles{
			cursor: renderer.NewStyle().Reverse(true).Bold(true),
			title:  renderer.NewStyle().Bold(true),
			notice: renderer.NewStyle().Foreground(lipgloss.Color("9")),
			result: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
			help:   renderer.NewStyle().Faint(true),
		},
	}
}

func (that *Renderer) RenderWelcome() error {
	return that.write(that.paint(that.styles.title, welcomeText) + "\n\n")
}

func (that *Renderer) RenderGame(players entity.Players, snapshot game.Snapshot) error {
	frame := that.FormatGame(players, snapshot)
	if that.clearScreen {
		frame = clearScreenSequence + frame
	}

	return that.write(frame)
}

func (that *Renderer) RenderMenu() error {
	return that.write("\n" + menuText + "\n")
}

func (that *Renderer) RenderNotice(message string) error {
	return that.write(that.paint(that.styles.notice, message) + "\n")
}

// FormatGame builds one frame: player banner, grid and status lines.
func (that *Renderer) FormatGame(players entity.Players, snapshot game.Snapshot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "P1: %s (%s)\n", players.First, entity.MarkX)
	fmt.Fprintf(&sb, "P2: %s (%s)\n\n", players.Second, entity.MarkO)

	showCursor := !snapshot.State.IsTerminal()

	for row := 0; row < entity.BoardSize; row++ {
		cells := make([]string, 0, entity.BoardSize)
		for col := 0; col < entity.BoardSize; col++ {
			mark := snapshot.Board.Cells[row][col]
			isCursor := showCursor && snapshot.Cursor == entity.Position{Row: row, Col: col}
			cells = append(cells, that.formatCell(mark, isCursor))
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")

		if row < entity.BoardSize-1 {
			sb.WriteString(rowSeparator + "\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(that.status(players, snapshot))
	sb.WriteString("\n")

	if snapshot.Notice != nil {
		sb.WriteString(that.paint(that.styles.notice, noticeText(snapshot.Notice)))
		sb.WriteString("\n")
	}

	if showCursor {
		sb.WriteString(that.paint(that.styles.help, controlsHelp))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (that *Renderer) formatCell(mark entity.Mark, isCursor bool) string {
	if !isCursor {
		return " " + mark.String() + " "
	}

	return that.paint(that.styles.cursor, "["+mark.String()+"]")
}

func (that *Renderer) status(players entity.Players, snapshot game.Snapshot) string {
	switch snapshot.State {
	case game.StateWon:
		winner := snapshot.Outcome.Winner
		return that.paint(that.styles.result, fmt.Sprintf("Winner: %s (%s)", players.NameOf(winner), winner))
	case game.StateTied:
		return that.paint(that.styles.result, "It's a tie!")
	default:
		return fmt.Sprintf("Turn: %s (%s)", players.NameOf(snapshot.Turn), snapshot.Turn)
	}
}

func (that *Renderer) paint(style lipgloss.Style, text string) string {
	if !that.color {
		return text
	}

	return style.Render(text)
}

func (that *Renderer) write(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write to terminal: %w", err)
	}

	return nil
}

func noticeText(err error) string {
	if errors.Is(err, apperror.ErrCellOccupied) {
		return "That cell is already taken, pick another one."
	}

	return err.Error()
}
