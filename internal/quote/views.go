package quote

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the flat rate applied when none is configured.
var DefaultTaxRate = decimal.NewFromFloat(0.08)

// Totals is the priced view of a quote at a given tax rate.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryGroup is one category's lines, in insertion order.
type CategoryGroup struct {
	Category string         `json:"category"`
	Items    []SelectedItem `json:"items"`
}

// Subtotal is the sum of price times quantity over all lines.
func Subtotal(q Quote) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range q.Items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// ComputeTotals applies the flat tax rate to the subtotal. The math is
// always defined; with only zero-priced lines everything is zero and
// whether to show it is the presentation layer's call.
func ComputeTotals(q Quote, taxRate decimal.Decimal) Totals {
	subtotal := Subtotal(q)
	tax := subtotal.Mul(taxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// AnyItemHasPositivePrice drives the "hide totals for unpriced quotes"
// presentation rule.
func AnyItemHasPositivePrice(q Quote) bool {
	for _, item := range q.Items {
		if item.Price.IsPositive() {
			return true
		}
	}
	return false
}

// GroupByCategory partitions the lines by category, categories ordered by
// first occurrence, lines keeping their order within each category. Two
// calls on the same quote value yield identical ordering.
func GroupByCategory(q Quote) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)

	for _, item := range q.Items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}

// SummaryText flattens the quote into a deterministic listing of categories,
// item names, quantities and notes. It feeds both the package-suggestion
// prompt and the share composers.
func SummaryText(q Quote) string {
	var b strings.Builder

	for _, group := range GroupByCategory(q) {
		fmt.Fprintf(&b, "%s:\n", group.Category)
		for _, item := range group.Items {
			fmt.Fprintf(&b, "- %s (x%d)\n", item.Name, item.Quantity)
			if item.Comment != "" {
				fmt.Fprintf(&b, "  Note: %s\n", item.Comment)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
