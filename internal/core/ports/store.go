package ports

import "github.com/mfraile/PyOxidizer/internal/core/domain"

// DistributionStore defines the interface for recording resolved distributions.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DistributionStore interface {
	// Get retrieves the record for a given key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.DistributionRecord, error)

	// Put stores the record.
	Put(record domain.DistributionRecord) error

	// List returns every record ordered by key.
	List() ([]domain.DistributionRecord, error)
}
