package mockrecords

import (
	"context"

	"supportpulse-be/internal/models"
	"supportpulse-be/internal/repository"
)

// Source is an in-memory RecordSource keyed by date.
type Source struct {
	Records map[string][]*models.ClassifiedRecord
	// Err makes every call fail when set.
	Err error
}

var _ repository.RecordSource = (*Source)(nil)

func New() *Source {
	return &Source{Records: map[string][]*models.ClassifiedRecord{}}
}

func (s *Source) ListForDate(_ context.Context, date string) ([]*models.ClassifiedRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Records[date], nil
}
