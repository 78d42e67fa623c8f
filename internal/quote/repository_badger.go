package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/shopspring/decimal"

	"github.com/Mohammad-Safadi/elsultan/internal/catalog"
)

var quotesKey = []byte("quotes")

// BadgerRepository stores the full quote collection as one JSON blob under
// a single key.
type BadgerRepository struct {
	db *badger.DB
}

func NewBadgerRepository(db *badger.DB) *BadgerRepository {
	return &BadgerRepository{db: db}
}

func (r *BadgerRepository) Load(ctx context.Context) ([]Quote, error) {
	var raw []byte

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(quotesKey)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("quote storage unreadable, starting empty: %v", err)
		return nil, nil
	}

	var stored []storedQuote
	if err := json.Unmarshal(raw, &stored); err != nil {
		log.Printf("quote storage corrupt, starting empty: %v", err)
		return nil, nil
	}

	quotes := make([]Quote, 0, len(stored))
	for _, sq := range stored {
		q, err := decodeQuote(sq)
		if err != nil {
			log.Printf("quote storage corrupt, starting empty: %v", err)
			return nil, nil
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}

func (r *BadgerRepository) Save(ctx context.Context, quotes []Quote) error {
	stored := make([]storedQuote, 0, len(quotes))
	for _, q := range quotes {
		stored = append(stored, encodeQuote(q))
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrStorageWrite, err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(quotesKey, raw)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	return nil
}

// --------------------------------------------------
// Stored document codec
// --------------------------------------------------
// Date fields cross the storage boundary as RFC 3339 strings, decoded back
// into time values on load. Kept as one explicit encode/decode pair so no
// ad hoc date parsing leaks into call sites.

type storedQuote struct {
	ID         string           `json:"id"`
	ClientInfo storedClientInfo `json:"clientInfo"`
	Items      []storedItem     `json:"items"`
	CreatedAt  string           `json:"createdAt"`
}

type storedClientInfo struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	EventDate   string `json:"eventDate,omitempty"`
	GuestCount  int    `json:"guestCount"`
}

type storedItem struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description,omitempty"`
	UID         string          `json:"uid"`
	Quantity    int             `json:"quantity"`
	Comment     string          `json:"comment,omitempty"`
}

func encodeQuote(q Quote) storedQuote {
	sq := storedQuote{
		ID: q.ID,
		ClientInfo: storedClientInfo{
			Name:        q.ClientInfo.Name,
			PhoneNumber: q.ClientInfo.PhoneNumber,
			GuestCount:  q.ClientInfo.GuestCount,
		},
		Items:     make([]storedItem, 0, len(q.Items)),
		CreatedAt: q.CreatedAt.Format(time.RFC3339Nano),
	}

	if q.ClientInfo.EventDate != nil {
		sq.ClientInfo.EventDate = q.ClientInfo.EventDate.Format(time.RFC3339Nano)
	}

	for _, item := range q.Items {
		sq.Items = append(sq.Items, storedItem{
			ID:          item.ID,
			Name:        item.Name,
			Category:    item.Category,
			Price:       item.Price,
			Image:       item.Image,
			Description: item.Description,
			UID:         item.UID,
			Quantity:    item.Quantity,
			Comment:     item.Comment,
		})
	}

	return sq
}

func decodeQuote(sq storedQuote) (Quote, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, sq.CreatedAt)
	if err != nil {
		return Quote{}, fmt.Errorf("createdAt[%s]: %w", sq.CreatedAt, err)
	}

	q := Quote{
		ID: sq.ID,
		ClientInfo: ClientInfo{
			Name:        sq.ClientInfo.Name,
			PhoneNumber: sq.ClientInfo.PhoneNumber,
			GuestCount:  sq.ClientInfo.GuestCount,
		},
		Items:     make([]SelectedItem, 0, len(sq.Items)),
		CreatedAt: createdAt,
	}

	if sq.ClientInfo.EventDate != "" {
		eventDate, err := time.Parse(time.RFC3339Nano, sq.ClientInfo.EventDate)
		if err != nil {
			return Quote{}, fmt.Errorf("eventDate[%s]: %w", sq.ClientInfo.EventDate, err)
		}
		q.ClientInfo.EventDate = &eventDate
	}

	for _, item := range sq.Items {
		q.Items = append(q.Items, SelectedItem{
			MenuItem: catalog.MenuItem{
				ID:          item.ID,
				Name:        item.Name,
				Category:    item.Category,
				Price:       item.Price,
				Image:       item.Image,
				Description: item.Description,
			},
			UID:      item.UID,
			Quantity: item.Quantity,
			Comment:  item.Comment,
		})
	}

	return q, nil
}
