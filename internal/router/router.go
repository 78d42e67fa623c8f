package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Mohammad-Safadi/elsultan/internal/auth"
	"github.com/Mohammad-Safadi/elsultan/internal/catalog"
	"github.com/Mohammad-Safadi/elsultan/internal/export"
	"github.com/Mohammad-Safadi/elsultan/internal/llm"
	"github.com/Mohammad-Safadi/elsultan/internal/middleware"
	"github.com/Mohammad-Safadi/elsultan/internal/quote"
)

type Handlers struct {
	Auth    *auth.Handler
	Catalog *catalog.Handler
	Quote   *quote.Handler
	Export  *export.Handler
	Suggest *llm.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
	}

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/catalog", h.Catalog.List)

		protected.GET("/quote", h.Quote.Get)
		protected.PATCH("/quote/client", h.Quote.UpdateClient)
		protected.POST("/quote/items", h.Quote.AddItem)
		protected.PATCH("/quote/items/:uid", h.Quote.UpdateItem)
		protected.DELETE("/quote/items/:uid", h.Quote.RemoveItem)

		protected.GET("/quote/print", h.Export.Print)
		protected.GET("/quote/export/email", h.Export.Email)
		protected.GET("/quote/export/whatsapp", h.Export.WhatsApp)
		protected.POST("/quote/export/pdf", h.Export.PDF)

		protected.POST("/quote/suggestions", h.Suggest.Suggest)
	}

	return r
}
