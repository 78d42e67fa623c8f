package export

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mohammad-Safadi/elsultan/internal/quote"
)

type Handler struct {
	store    *quote.Store
	svc      *Service
	renderer Renderer
	dir      string
}

func NewHandler(store *quote.Store, svc *Service, renderer Renderer, dir string) *Handler {
	return &Handler{store: store, svc: svc, renderer: renderer, dir: dir}
}

func (h *Handler) Email(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mailto": h.svc.MailtoLink(h.store.Active())})
}

func (h *Handler) WhatsApp(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"link": h.svc.WhatsAppLink(h.store.Active())})
}

func (h *Handler) Print(c *gin.Context) {
	c.String(http.StatusOK, h.svc.PrintText(h.store.Active()))
}

// PDF writes the rendered quote to the export directory. Export failures
// are retryable; the quote itself is untouched.
func (h *Handler) PDF(c *gin.Context) {
	path, err := h.svc.SavePDF(h.store.Active(), h.renderer, h.dir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed, try again"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"path": path})
}
