package quote

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Mohammad-Safadi/elsultan/internal/catalog"
)

type Handler struct {
	store   *Store
	catalog *catalog.Catalog
	taxRate decimal.Decimal
}

func NewHandler(store *Store, catalog *catalog.Catalog, taxRate decimal.Decimal) *Handler {
	return &Handler{store: store, catalog: catalog, taxRate: taxRate}
}

// Get returns the active quote with its derived views.
func (h *Handler) Get(c *gin.Context) {
	q := h.store.Active()

	c.JSON(http.StatusOK, gin.H{
		"quote":      q,
		"totals":     ComputeTotals(q, h.taxRate),
		"categories": GroupByCategory(q),
		"priced":     AnyItemHasPositivePrice(q),
	})
}

type updateClientRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	EventDate   *string `json:"eventDate"`
	GuestCount  *int    `json:"guestCount"`
}

func (h *Handler) UpdateClient(c *gin.Context) {
	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	patch := ClientInfoPatch{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		GuestCount:  req.GuestCount,
	}
	if req.EventDate != nil {
		d, err := time.Parse(time.RFC3339, *req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "eventDate must be RFC 3339"})
			return
		}
		patch.EventDate = &d
	}

	if err := h.store.UpdateClientInfo(c.Request.Context(), patch); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": h.store.Active()})
}

type addItemRequest struct {
	MenuItemID int    `json:"menuItemId"`
	Comment    string `json:"comment"`
}

func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, ok := h.catalog.Item(req.MenuItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown menu item"})
		return
	}

	uid, err := h.store.AddItem(c.Request.Context(), item, req.Comment)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"uid": uid, "quote": h.store.Active()})
}

type updateItemRequest struct {
	Quantity *int    `json:"quantity"`
	Comment  *string `json:"comment"`
}

// UpdateItem adjusts a line's quantity and/or note. A quantity of zero or
// less removes the line. An unknown uid is a no-op, mirroring the store.
func (h *Handler) UpdateItem(c *gin.Context) {
	uid := c.Param("uid")

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Quantity == nil && req.Comment == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	ctx := c.Request.Context()
	if req.Quantity != nil {
		if err := h.store.UpdateQuantity(ctx, uid, *req.Quantity); err != nil {
			h.writeError(c, err)
			return
		}
	}
	if req.Comment != nil {
		if err := h.store.UpdateComment(ctx, uid, *req.Comment); err != nil {
			h.writeError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"quote": h.store.Active()})
}

func (h *Handler) RemoveItem(c *gin.Context) {
	if err := h.store.RemoveItem(c.Request.Context(), c.Param("uid")); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": h.store.Active()})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrStorageWrite) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist quote"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
