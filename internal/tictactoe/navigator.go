package tictactoe

import "github.com/DevSlashRichie/tik-tak-toe/internal/entity"

type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// MoveCursor shifts pos one cell in dir, clamped to the board. There is no wraparound.
// An unknown direction leaves pos as it is.
func MoveCursor(pos entity.Position, dir Direction) entity.Position {
	switch dir {
	case Up:
		pos.Row--
	case Down:
		pos.Row++
	case Left:
		pos.Col--
	case Right:
		pos.Col++
	}

	return entity.Position{Row: clamp(pos.Row), Col: clamp(pos.Col)}
}

func clamp(index int) int {
	return max(entity.MinIndex, min(index, entity.MaxIndex))
}
