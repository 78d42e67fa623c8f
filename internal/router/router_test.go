package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/Mohammad-Safadi/elsultan/internal/auth"
	"github.com/Mohammad-Safadi/elsultan/internal/catalog"
	"github.com/Mohammad-Safadi/elsultan/internal/export"
	"github.com/Mohammad-Safadi/elsultan/internal/llm"
	"github.com/Mohammad-Safadi/elsultan/internal/quote"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-key-12345")
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Default()
	require.NoError(t, err)

	store, err := quote.NewStore(t.Context(), quote.NewInMemoryRepository(), quote.PolicyMerge)
	require.NoError(t, err)

	userRepo := auth.NewInMemoryUserRepository()
	authService := auth.NewService(userRepo)
	_, err = authService.Register("Admin", "admin", "secret123")
	require.NoError(t, err)

	taxRate := quote.DefaultTaxRate
	exportService := export.NewService("Elsultan Halls", taxRate, currency.USD)

	return NewRouter(Handlers{
		Auth:    auth.NewHandler(authService),
		Catalog: catalog.NewHandler(cat),
		Quote:   quote.NewHandler(store, cat, taxRate),
		Export:  export.NewHandler(store, exportService, export.NewTextRenderer(exportService), t.TempDir()),
		Suggest: llm.NewHandler(store, nil),
	})
}

func doJSON(r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "admin",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	return resp.Token
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestQuoteRoutesRequireAuth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/quote", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestQuoteFlow(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	// add an item from the catalog
	w := doJSON(r, http.MethodPost, "/quote/items", token, map[string]any{
		"menuItemId": 1,
		"comment":    "no dressing",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var added struct {
		UID string `json:"uid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	require.NotEmpty(t, added.UID)

	// bump its quantity
	w = doJSON(r, http.MethodPatch, "/quote/items/"+added.UID, token, map[string]any{
		"quantity": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// set the client name
	w = doJSON(r, http.MethodPatch, "/quote/client", token, map[string]any{
		"name":       "Amal",
		"guestCount": 80,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// read back the derived views
	w = doJSON(r, http.MethodGet, "/quote", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Quote struct {
			ClientInfo struct {
				Name string `json:"name"`
			} `json:"clientInfo"`
			Items []struct {
				UID      string `json:"uid"`
				Quantity int    `json:"quantity"`
			} `json:"items"`
		} `json:"quote"`
		Totals struct {
			Subtotal decimal.Decimal `json:"subtotal"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Amal", view.Quote.ClientInfo.Name)
	require.Len(t, view.Quote.Items, 1)
	assert.Equal(t, 3, view.Quote.Items[0].Quantity)
	assert.True(t, view.Totals.Subtotal.Equal(decimal.NewFromFloat(25.5)), "subtotal = %s", view.Totals.Subtotal)

	// remove the line
	w = doJSON(r, http.MethodDelete, "/quote/items/"+added.UID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/quote/print", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Amal")
}

func TestUnknownMenuItem(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doJSON(r, http.MethodPost, "/quote/items", token, map[string]any{
		"menuItemId": 99999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuggestionsDisabledWithoutClient(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doJSON(r, http.MethodPost, "/quote/suggestions", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
