package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/riskibarqy/dynasty-league/internal/domain/audit"
)

type AuditRepository struct {
	mu      sync.RWMutex
	entries []audit.Entry
}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) Create(_ context.Context, entry audit.Entry) error {
	entry.Changes = maps.Clone(entry.Changes)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// List returns matching entries newest first.
func (r *AuditRepository) List(_ context.Context, filter audit.Filter) ([]audit.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]audit.Entry, 0, len(r.entries))
	for _, entry := range slices.Backward(r.entries) {
		if !filter.Matches(entry) {
			continue
		}
		out = append(out, entry)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}
