package export_test

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"

	"github.com/Mohammad-Safadi/elsultan/internal/export"
	"github.com/Mohammad-Safadi/elsultan/internal/quote"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newService() *export.Service {
	return export.NewService("Elsultan Halls", decimal.NewFromFloat(0.08), currency.USD)
}

func sampleQuote() quote.Quote {
	eventDate := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	tabbouleh := quote.SelectedItem{UID: "u1", Quantity: 2, Comment: "no onions"}
	tabbouleh.ID = 2
	tabbouleh.Name = "Tabbouleh"
	tabbouleh.Category = "Salads"
	tabbouleh.Price = decimal.NewFromInt(10)

	grill := quote.SelectedItem{UID: "u2", Quantity: 3}
	grill.ID = 9
	grill.Name = "Mixed Grill"
	grill.Category = "Main Courses"
	grill.Price = decimal.NewFromInt(5)

	return quote.Quote{
		ID: "q1",
		ClientInfo: quote.ClientInfo{
			Name:       "Amal Haddad",
			GuestCount: 150,
			EventDate:  &eventDate,
		},
		Items:     []quote.SelectedItem{tabbouleh, grill},
		CreatedAt: time.Now(),
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name   string
		client string
		want   string
	}{
		{name: "plain name", client: "Amal Haddad", want: "Amal_Haddad"},
		{name: "punctuation runs collapse", client: "A&B -- Catering!!", want: "A_B_Catering"},
		{name: "leading and trailing junk", client: "  ~Amal~  ", want: "Amal"},
		{name: "empty falls back", client: "", want: "quote"},
		{name: "only junk falls back", client: "!!!", want: "quote"},
		{name: "digits kept", client: "Hall 21", want: "Hall_21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, export.FileName(tt.client))
		})
	}
}

func TestMailtoLink(t *testing.T) {
	link := newService().MailtoLink(sampleQuote())

	require.True(t, strings.HasPrefix(link, "mailto:?subject="))
	assert.NotContains(t, link, "+", "spaces must encode as %%20")

	u, err := url.Parse(link)
	require.NoError(t, err)

	query, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)

	assert.Equal(t, "Quote for Amal Haddad", query.Get("subject"))

	body := query.Get("body")
	assert.Contains(t, body, "Hello Amal Haddad,")
	assert.Contains(t, body, "September 12, 2026")
	assert.Contains(t, body, "Guest Count: 150")
	assert.Contains(t, body, "Salads:")
	assert.Contains(t, body, "- Tabbouleh (x2)")
	assert.Contains(t, body, "Note: no onions")
	assert.Contains(t, body, "Subtotal: USD 35.00")
	assert.Contains(t, body, "Tax (8%): USD 2.80")
	assert.Contains(t, body, "Total: USD 37.80")
	assert.Contains(t, body, "Elsultan Halls")
}

func TestWhatsAppLink(t *testing.T) {
	link := newService().WhatsAppLink(sampleQuote())

	require.True(t, strings.HasPrefix(link, "https://wa.me/?text="))

	text, err := url.QueryUnescape(strings.TrimPrefix(link, "https://wa.me/?text="))
	require.NoError(t, err)

	assert.Contains(t, text, "*Quote for Amal Haddad*")
	assert.Contains(t, text, "*Salads:*")
	assert.Contains(t, text, "- Mixed Grill (x3)")
	assert.Contains(t, text, "Total: USD 37.80")
}

func TestTotalsHiddenWhenNothingPriced(t *testing.T) {
	q := sampleQuote()
	for i := range q.Items {
		q.Items[i].Price = decimal.Zero
	}

	text := newService().PrintText(q)

	assert.Contains(t, text, "- Tabbouleh (x2)")
	assert.NotContains(t, text, "Subtotal")
	assert.NotContains(t, text, "Total:")
}

func TestSavePDFWritesSanitizedFile(t *testing.T) {
	svc := newService()
	dir := t.TempDir()

	path, err := svc.SavePDF(sampleQuote(), export.NewTextRenderer(svc), dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Amal_Haddad.pdf"), path)

	doc, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "Elsultan Halls — Catering Quote")
	assert.Contains(t, string(doc), "Client: Amal Haddad")
}

func TestSavePDFFallbackName(t *testing.T) {
	svc := newService()
	dir := t.TempDir()

	q := sampleQuote()
	q.ClientInfo.Name = ""

	path, err := svc.SavePDF(q, export.NewTextRenderer(svc), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "quote.pdf"), path)
}
