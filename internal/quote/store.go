package quote

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Mohammad-Safadi/elsultan/internal/catalog"
)

// Store owns the quote collection and the active quote (by convention the
// first element). All mutations go through it; each one writes the active
// quote back into the collection and persists the whole collection before
// returning, so a reload always reflects the last operation.
//
// Operations referencing a uid that no longer exists are silent no-ops: the
// only line the operator can act on is one that is displayed, so a missing
// uid just means the line is already gone. The only error a mutation can
// return is a storage write failure.
type Store struct {
	mu     sync.Mutex
	repo   Repository
	policy DuplicatePolicy

	quotes []Quote
	active Quote
}

// NewStore loads the persisted collection and designates the first quote as
// active. An empty (or absent, or corrupt) collection yields a fresh quote.
func NewStore(ctx context.Context, repo Repository, policy DuplicatePolicy) (*Store, error) {
	s := &Store{
		repo:   repo,
		policy: policy,
	}
	if s.policy == "" {
		s.policy = PolicyMerge
	}

	quotes, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.Load: %w", err)
	}

	if len(quotes) == 0 {
		s.active = NewQuote()
		s.quotes = []Quote{s.active}
		if err := repo.Save(ctx, s.quotes); err != nil {
			return nil, err
		}
	} else {
		s.quotes = quotes
		s.active = quotes[0]
	}

	return s, nil
}

// Active returns a snapshot of the active quote. Mutating the snapshot has
// no effect on the store.
func (s *Store) Active() Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active.clone()
}

// UpdateClientInfo merges the non-nil fields of the patch into the active
// quote's client info. No validation: an empty name or guest count is a
// display concern.
func (s *Store) UpdateClientInfo(ctx context.Context, patch ClientInfoPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := s.active.ClientInfo
	if patch.Name != nil {
		info.Name = *patch.Name
	}
	if patch.PhoneNumber != nil {
		info.PhoneNumber = *patch.PhoneNumber
	}
	if patch.EventDate != nil {
		d := *patch.EventDate
		info.EventDate = &d
	}
	if patch.GuestCount != nil {
		info.GuestCount = *patch.GuestCount
	}
	s.active.ClientInfo = info

	return s.persist(ctx)
}

// AddItem puts a catalog item into the active quote. Under PolicyMerge an
// existing line for the same menu item gets its quantity bumped and the
// supplied comment is discarded; under PolicyAppend a new line is always
// created. The returned uid identifies the affected line.
func (s *Store) AddItem(ctx context.Context, item catalog.MenuItem, comment string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.policy == PolicyMerge {
		for i, line := range s.active.Items {
			if line.MenuItem.ID == item.ID {
				s.active.Items[i].Quantity++
				return line.UID, s.persist(ctx)
			}
		}
	}

	line := SelectedItem{
		MenuItem: item,
		UID:      uuid.New().String(),
		Quantity: 1,
		Comment:  comment,
	}
	s.active.Items = append(s.active.Items, line)

	return line.UID, s.persist(ctx)
}

// UpdateQuantity sets the quantity of the line with the given uid. A value
// of zero or less removes the line: quantities below one are never kept.
func (s *Store) UpdateQuantity(ctx context.Context, uid string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLine(uid)
		return s.persist(ctx)
	}

	for i, line := range s.active.Items {
		if line.UID == uid {
			s.active.Items[i].Quantity = quantity
			break
		}
	}

	return s.persist(ctx)
}

func (s *Store) RemoveItem(ctx context.Context, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLine(uid)
	return s.persist(ctx)
}

func (s *Store) UpdateComment(ctx context.Context, uid, comment string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.active.Items {
		if line.UID == uid {
			s.active.Items[i].Comment = comment
			break
		}
	}

	return s.persist(ctx)
}

func (s *Store) removeLine(uid string) {
	items := make([]SelectedItem, 0, len(s.active.Items))
	for _, line := range s.active.Items {
		if line.UID != uid {
			items = append(items, line)
		}
	}
	s.active.Items = items
}

// persist writes the active quote back into the collection (replacing by
// id, prepending if absent) and saves the whole collection. Callers hold
// the lock.
func (s *Store) persist(ctx context.Context) error {
	found := false
	for i, q := range s.quotes {
		if q.ID == s.active.ID {
			s.quotes[i] = s.active
			found = true
			break
		}
	}
	if !found {
		s.quotes = append([]Quote{s.active}, s.quotes...)
	}

	return s.repo.Save(ctx, s.quotes)
}
