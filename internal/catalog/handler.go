package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// List returns the full menu grouped by category, in catalog order.
func (h *Handler) List(c *gin.Context) {
	type categoryGroup struct {
		Category string     `json:"category"`
		Items    []MenuItem `json:"items"`
	}

	groups := make([]categoryGroup, 0, len(h.catalog.Categories()))
	for _, category := range h.catalog.Categories() {
		groups = append(groups, categoryGroup{
			Category: category,
			Items:    h.catalog.ItemsByCategory(category),
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": groups})
}
