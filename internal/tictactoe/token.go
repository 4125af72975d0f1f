package tictactoe

// Token is one unit of player input during a game.
type Token struct {
	Kind      TokenKind
	Direction Direction
}

type TokenKind int

const (
	TokenIgnored TokenKind = iota
	TokenMove
	TokenCommit
)

const (
	KeyUp     = 'w'
	KeyDown   = 's'
	KeyLeft   = 'a'
	KeyRight  = 'd'
	KeyCommit = 'p'
)

// ParseToken maps a keystroke to a token. Keys are case-sensitive; anything unknown is ignored.
func ParseToken(key byte) Token {
	switch key {
	case KeyUp:
		return Token{Kind: TokenMove, Direction: Up}
	case KeyDown:
		return Token{Kind: TokenMove, Direction: Down}
	case KeyLeft:
		return Token{Kind: TokenMove, Direction: Left}
	case KeyRight:
		return Token{Kind: TokenMove, Direction: Right}
	case KeyCommit:
		return Token{Kind: TokenCommit}
	default:
		return Token{Kind: TokenIgnored}
	}
}
