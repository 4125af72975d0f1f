package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/DevSlashRichie/tik-tak-toe/internal/entity"
)

const historyFileMode = 0o644

type fileRecord struct {
	path string
}

// NewFileRecordRepository keeps a plain text log of games at path.
func NewFileRecordRepository(path string) RecordRepository {
	return &fileRecord{
		path: path,
	}
}

func (that *fileRecord) Append(_ context.Context, record *entity.Record) error {
	file, err := os.OpenFile(that.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, historyFileMode)
	if err != nil {
		return fmt.Errorf("could not open history file: %w", err)
	}

	if _, err = file.WriteString(record.Serialize()); err != nil {
		_ = file.Close()
		return fmt.Errorf("could not write record: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("could not close history file: %w", err)
	}

	return nil
}
