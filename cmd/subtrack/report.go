package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"subtrack/internal/domain"
	"subtrack/internal/money"
	"subtrack/internal/stats"
)

// printReport renders the normalized cost breakdown as a table, most
// expensive first, with the monthly total in the footer.
func printReport(w io.Writer, subs []domain.Subscription, base money.Currency, rates money.RateTable, filter *domain.Category) error {
	breakdown, err := stats.Aggregate(subs, base, rates, filter)
	if err != nil {
		return err
	}

	scope := "all categories"
	if filter != nil {
		scope = filter.Label()
	}
	fmt.Fprintf(w, "Tracking %d subscriptions (%s)\n\n", len(breakdown.Items), scope)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Name", "Category", "Cycle", "Price", "Monthly", "Share"})

	for _, it := range breakdown.Items {
		t.AppendRow(table.Row{
			it.Sub.Name,
			it.Sub.Category.Label(),
			string(it.Sub.Cycle),
			fmt.Sprintf("%s%.2f", it.Sub.Currency.Symbol(), it.Sub.Price()),
			fmt.Sprintf("%s%.2f", base.Symbol(), it.Monthly),
			fmt.Sprintf("%.1f%%", it.Share(breakdown.Total)),
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{
		"", "", "",
		text.Bold.Sprint("Total"),
		text.Bold.Sprintf("%s%.2f", base.Symbol(), breakdown.Total),
		"",
	})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	t.Render()
	return nil
}
