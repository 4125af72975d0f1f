package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/DevSlashRichie/tik-tak-toe/internal/entity"
)

// RecordRepository appends finished games to an archive. Existing entries are never rewritten.
type RecordRepository interface {
	Append(ctx context.Context, record *entity.Record) error
}

type multiRecord struct {
	repos []RecordRepository
}

// NewMultiRecordRepository appends every record to all repos. One failing sink does not stop the others.
func NewMultiRecordRepository(repos ...RecordRepository) RecordRepository {
	return &multiRecord{
		repos: repos,
	}
}

func (that *multiRecord) Append(ctx context.Context, record *entity.Record) error {
	var errs []error

	for _, repo := range that.repos {
		if err := repo.Append(ctx, record); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}

	return nil
}
