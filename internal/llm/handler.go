package llm

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mohammad-Safadi/elsultan/internal/quote"
)

type Handler struct {
	store  *quote.Store
	client Client
}

// NewHandler wires the suggestion endpoint. A nil client disables it.
func NewHandler(store *quote.Store, client Client) *Handler {
	return &Handler{store: store, client: client}
}

// Suggest feeds the active quote's summary to the model and returns the
// parsed package names. Failures are retryable and never affect the quote.
func (h *Handler) Suggest(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "suggestions are not configured"})
		return
	}

	summary := quote.SummaryText(h.store.Active())
	if summary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "select items before requesting suggestions"})
		return
	}

	raw, err := h.client.SuggestPackages(c.Request.Context(), summary)
	if err != nil {
		if errors.Is(err, ErrSuggestionUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "suggestion service unavailable, try again"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": ParsePackages(raw)})
}
