package mock

import (
	"context"

	"github.com/fwojciec/provscan"
)

var _ provscan.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of provscan.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, rec *provscan.Record) error
}

func (w *RecordWriter) WriteRecord(ctx context.Context, rec *provscan.Record) error {
	return w.WriteRecordFn(ctx, rec)
}

var _ provscan.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of provscan.RecordService.
type RecordService struct {
	CreateRecordFn    func(ctx context.Context, rec *provscan.Record) error
	FindRecordByURLFn func(ctx context.Context, url string) (*provscan.Record, error)
	FindRecordsFn     func(ctx context.Context, filter provscan.RecordFilter) ([]*provscan.Record, error)
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *provscan.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByURL(ctx context.Context, url string) (*provscan.Record, error) {
	return s.FindRecordByURLFn(ctx, url)
}

func (s *RecordService) FindRecords(ctx context.Context, filter provscan.RecordFilter) ([]*provscan.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}
