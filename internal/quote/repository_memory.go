package quote

import "context"

// InMemoryRepository keeps the collection in process memory. Used by tests
// and as a fallback when no data directory is configured.
type InMemoryRepository struct {
	quotes []Quote
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Load(ctx context.Context) ([]Quote, error) {
	out := make([]Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		out = append(out, q.clone())
	}
	return out, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, quotes []Quote) error {
	r.quotes = make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		r.quotes = append(r.quotes, q.clone())
	}
	return nil
}
