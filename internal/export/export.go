package export

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/Mohammad-Safadi/elsultan/internal/quote"
)

// Service composes shareable renderings of a quote snapshot. It only reads;
// a mutation made after a snapshot was taken does not affect an in-flight
// export.
type Service struct {
	businessName string
	taxRate      decimal.Decimal
	cur          currency.Unit
}

func NewService(businessName string, taxRate decimal.Decimal, cur currency.Unit) *Service {
	return &Service{
		businessName: businessName,
		taxRate:      taxRate,
		cur:          cur,
	}
}

// MailtoLink builds a mailto: URL with subject "Quote for <client>" and a
// plain-text body listing the selection and totals.
func (s *Service) MailtoLink(q quote.Quote) string {
	subject := fmt.Sprintf("Quote for %s", q.ClientInfo.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", q.ClientInfo.Name)
	if q.ClientInfo.EventDate != nil {
		fmt.Fprintf(&b, "Here is your quote for the event on %s.\n\n", q.ClientInfo.EventDate.Format("January 2, 2006"))
	} else {
		b.WriteString("Here is your quote for the event on N/A.\n\n")
	}
	fmt.Fprintf(&b, "Guest Count: %d\n\n", q.ClientInfo.GuestCount)

	s.writeItems(&b, q, "%s:\n")
	s.writeTotals(&b, q)

	fmt.Fprintf(&b, "\nThank you,\n%s", s.businessName)

	return fmt.Sprintf("mailto:?subject=%s&body=%s", encodeComponent(subject), encodeComponent(b.String()))
}

// WhatsAppLink builds a wa.me share URL with a starred-bold rendition of
// the same listing.
func (s *Service) WhatsAppLink(q quote.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Quote for %s*\n\n", q.ClientInfo.Name)

	s.writeItems(&b, q, "*%s:*\n")
	s.writeTotals(&b, q)

	return "https://wa.me/?text=" + encodeComponent(b.String())
}

// PrintText is the plain-text print view: header, client block, the
// category listing and totals, with signature lines at the bottom.
func (s *Service) PrintText(q quote.Quote) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s — Catering Quote\n", s.businessName)
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	fmt.Fprintf(&b, "Client: %s\n", orNA(q.ClientInfo.Name))
	fmt.Fprintf(&b, "Phone: %s\n", orNA(q.ClientInfo.PhoneNumber))
	if q.ClientInfo.EventDate != nil {
		fmt.Fprintf(&b, "Event Date: %s\n", q.ClientInfo.EventDate.Format("January 2, 2006"))
	} else {
		b.WriteString("Event Date: N/A\n")
	}
	fmt.Fprintf(&b, "Guests: %d\n\n", q.ClientInfo.GuestCount)

	s.writeItems(&b, q, "%s\n")
	s.writeTotals(&b, q)

	b.WriteString("\nClient signature: ____________________\n")
	b.WriteString("Authorized signature: ____________________\n")

	return b.String()
}

func (s *Service) writeItems(b *strings.Builder, q quote.Quote, categoryFormat string) {
	for _, group := range quote.GroupByCategory(q) {
		fmt.Fprintf(b, categoryFormat, group.Category)
		for _, item := range group.Items {
			fmt.Fprintf(b, "- %s (x%d)\n", item.Name, item.Quantity)
			if item.Comment != "" {
				fmt.Fprintf(b, "  Note: %s\n", item.Comment)
			}
		}
		b.WriteString("\n")
	}
}

// writeTotals appends the priced summary. Totals stay off share texts when
// no line carries a positive price; the arithmetic itself is always defined.
func (s *Service) writeTotals(b *strings.Builder, q quote.Quote) {
	if !quote.AnyItemHasPositivePrice(q) {
		return
	}

	totals := quote.ComputeTotals(q, s.taxRate)

	percent := s.taxRate.Mul(decimal.NewFromInt(100)).String()
	if strings.Contains(percent, ".") {
		percent = strings.TrimRight(strings.TrimRight(percent, "0"), ".")
	}

	fmt.Fprintf(b, "Subtotal: %s\n", s.money(totals.Subtotal))
	fmt.Fprintf(b, "Tax (%s%%): %s\n", percent, s.money(totals.Tax))
	fmt.Fprintf(b, "Total: %s\n", s.money(totals.Total))
}

func (s *Service) money(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", s.cur, amount.StringFixed(2))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// encodeComponent escapes like encodeURIComponent: spaces become %20, not +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

var unsafeRuns = regexp.MustCompile(`[^A-Za-z0-9]+`)

// FileName derives a safe export file stem from the client name: runs of
// anything outside A-Za-z0-9 collapse to a single underscore, with "quote"
// as the fallback for empty names.
func FileName(clientName string) string {
	name := unsafeRuns.ReplaceAllString(strings.TrimSpace(clientName), "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return "quote"
	}
	return name
}
