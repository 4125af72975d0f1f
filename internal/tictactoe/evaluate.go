package tictactoe

import "github.com/DevSlashRichie/tik-tak-toe/internal/entity"

// WinLines lists every line in checking order: rows, columns, then the two diagonals.
var WinLines = [8][3]entity.Position{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// Evaluate reports the outcome of the board. A completed line wins even on a full board.
func Evaluate(board *entity.Board) entity.Outcome {
	for _, line := range WinLines {
		a := board.Cells[line[0].Row][line[0].Col]
		b := board.Cells[line[1].Row][line[1].Col]
		c := board.Cells[line[2].Row][line[2].Col]

		if a != entity.Empty && a == b && b == c {
			return entity.WinOf(a)
		}
	}

	// the game will continue until all the cells are full
	if !board.IsFull() {
		return entity.Outcome{Status: entity.InProgress}
	}

	return entity.TieOutcome()
}
