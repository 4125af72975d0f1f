package entity

import (
	"strings"

	"github.com/DevSlashRichie/tik-tak-toe/internal/apperror"
)

// Players holds the display names. The first player always plays X.
type Players struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

func (that Players) NameOf(mark Mark) string {
	switch mark {
	case MarkX:
		return that.First
	case MarkO:
		return that.Second
	default:
		return ""
	}
}

// NormalizeName trims name and rejects it when nothing is left.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperror.ErrInvalidName
	}

	return name, nil
}
