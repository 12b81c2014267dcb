package api

import (
	"capbrowse/internal/browse"
	"capbrowse/internal/record"
)

// RecordReader abstracts the loaded record collection.
type RecordReader interface {
	Records() []*record.Normalized
	Err() error
}

// RecordService exposes read-only record queries returning API DTOs.
type RecordService struct {
	store RecordReader
}

// NewRecordService constructs a RecordService around the provided reader.
func NewRecordService(store RecordReader) *RecordService {
	if store == nil {
		return nil
	}
	return &RecordService{store: store}
}

// View applies state to the full collection.
func (s *RecordService) View(state browse.State) browse.View {
	if s == nil || s.store == nil {
		return browse.Apply(nil, state)
	}
	return browse.Apply(s.store.Records(), state)
}

// List returns one page of records for state. A load failure yields an empty
// page with the error message attached.
func (s *RecordService) List(state browse.State) RecordListResponse {
	resp := FromView(s.View(state))
	if s != nil && s.store != nil {
		if err := s.store.Err(); err != nil {
			resp.Error = err.Error()
		}
	}
	return resp
}

// Describe returns the serialized JSON of the first record with id.
func (s *RecordService) Describe(id string) (string, bool) {
	if s == nil || s.store == nil {
		return "", false
	}
	n, ok := record.FindByID(s.store.Records(), id)
	if !ok {
		return "", false
	}
	return record.Serialize(n), true
}
