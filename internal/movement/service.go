package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DecoderPort abstracts the workbook decoder.
type DecoderPort interface {
	Decode(content []byte) ([]RawRow, error)
}

// StorePort abstracts dataset storage for the service.
type StorePort interface {
	Save(ctx context.Context, ds *Dataset) error
	Load(ctx context.Context, id string) (*Dataset, error)
}

// Service coordinates workbook ingestion and signed aggregation.
type Service struct {
	decoder DecoderPort
	store   StorePort
}

// NewService builds Service.
func NewService(decoder DecoderPort, store StorePort) *Service {
	return &Service{decoder: decoder, store: store}
}

// Result carries the outcome of one aggregation run.
type Result struct {
	MatchedRows int
	Total       float64
	Applied     AppliedFilters
	Description Description
}

// ProcessFile decodes, validates and indexes a workbook, storing the derived
// state as one new dataset. A failure at any stage leaves nothing behind.
func (s *Service) ProcessFile(ctx context.Context, content []byte) (*Dataset, error) {
	rows, err := s.decoder.Decode(content)
	if err != nil {
		return nil, err
	}
	if err := ValidateSchema(rows); err != nil {
		return nil, err
	}
	records := Records(rows)
	ds := &Dataset{
		ID:        uuid.NewString(),
		Records:   records,
		Indexes:   BuildIndexes(records),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// GetDataset loads a stored dataset by id.
func (s *Service) GetDataset(ctx context.Context, id string) (*Dataset, error) {
	return s.store.Load(ctx, id)
}

// ApplyFilters filters the full record set of the dataset and computes the
// signed net quantity of the matching rows. The applied-filters snapshot is
// recorded on the dataset even when nothing matches; in that case
// ErrNoMatchingRows is returned instead of a numeric result.
func (s *Service) ApplyFilters(ctx context.Context, datasetID string, sel Selection) (*Result, error) {
	ds, err := s.store.Load(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	applied := AppliedFilters{
		Products:   append([]string(nil), sel.Products...),
		Warehouses: append([]string(nil), sel.Warehouses...),
		AppliedAt:  time.Now().UTC(),
	}
	ds.LastApplied = &applied
	if err := s.store.Save(ctx, ds); err != nil {
		return nil, err
	}

	matched := Filter(ds.Records, sel)
	if len(matched) == 0 {
		return nil, ErrNoMatchingRows
	}

	return &Result{
		MatchedRows: len(matched),
		Total:       NetQuantity(matched),
		Applied:     applied,
		Description: Describe(applied, ds.Indexes.ProductCodes),
	}, nil
}

// DescribeResult renders the summary for an applied-filters snapshot. Pure;
// it never recomputes totals.
func (s *Service) DescribeResult(applied AppliedFilters, codes map[string]string) Description {
	return Describe(applied, codes)
}
