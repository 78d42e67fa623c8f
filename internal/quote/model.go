package quote

import (
	"time"

	"github.com/google/uuid"

	"github.com/Mohammad-Safadi/elsultan/internal/catalog"
)

// DuplicatePolicy controls what AddItem does when the active quote already
// holds a line for the same menu item.
type DuplicatePolicy string

const (
	// PolicyMerge bumps the existing line's quantity by one and drops the
	// supplied comment.
	PolicyMerge DuplicatePolicy = "merge"
	// PolicyAppend always creates a new line with its own uid.
	PolicyAppend DuplicatePolicy = "append"
)

func ParseDuplicatePolicy(s string) (DuplicatePolicy, bool) {
	switch DuplicatePolicy(s) {
	case PolicyMerge, PolicyAppend:
		return DuplicatePolicy(s), true
	case "":
		return PolicyMerge, true
	}
	return "", false
}

// SelectedItem is one line of a quote: a copy of the catalog entry plus the
// line's own identity, quantity and note. The uid identifies the line, not
// the menu item; with PolicyAppend several lines may share a MenuItem id.
type SelectedItem struct {
	catalog.MenuItem
	UID      string `json:"uid"`
	Quantity int    `json:"quantity"`
	Comment  string `json:"comment,omitempty"`
}

type ClientInfo struct {
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	EventDate   *time.Time `json:"eventDate,omitempty"`
	GuestCount  int        `json:"guestCount"`
}

// ClientInfoPatch is a partial update; nil fields are left untouched.
type ClientInfoPatch struct {
	Name        *string    `json:"name"`
	PhoneNumber *string    `json:"phoneNumber"`
	EventDate   *time.Time `json:"eventDate"`
	GuestCount  *int       `json:"guestCount"`
}

// Quote is the aggregate being built for one client. ID and CreatedAt are
// fixed at creation; items keep insertion order, which is also the display
// and export order.
type Quote struct {
	ID         string         `json:"id"`
	ClientInfo ClientInfo     `json:"clientInfo"`
	Items      []SelectedItem `json:"items"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func NewQuote() Quote {
	return Quote{
		ID: uuid.New().String(),
		ClientInfo: ClientInfo{
			GuestCount: 1,
		},
		Items:     []SelectedItem{},
		CreatedAt: time.Now(),
	}
}

// clone returns a deep copy so snapshots handed to callers cannot alias the
// store's state.
func (q Quote) clone() Quote {
	out := q
	out.Items = make([]SelectedItem, len(q.Items))
	copy(out.Items, q.Items)
	if q.ClientInfo.EventDate != nil {
		d := *q.ClientInfo.EventDate
		out.ClientInfo.EventDate = &d
	}
	return out
}
