package tui

import (
	"fmt"
	"strings"

	"subtrack/internal/calendar"
	"subtrack/internal/catalog"
	"subtrack/internal/domain"
	"subtrack/internal/money"
	"subtrack/internal/stats"
)

func (a *App) View() string {
	if a.modal != modalNone {
		return a.theme.ModalFrame.Render(a.renderModal())
	}

	var body string
	switch a.state {
	case viewGrid:
		body = a.renderGrid()
	case viewStats:
		body = a.renderStats()
	case viewCalendar:
		body = a.renderCalendar()
	case viewSettings:
		body = a.renderSettings()
	}

	out := a.renderHeader() + "\n\n" + body
	if a.status != "" {
		out += "\n" + a.theme.Faint.Render(a.status)
	}
	return out
}

func (a *App) renderHeader() string {
	breakdown, _ := stats.Aggregate(a.subs, a.base, a.rates, nil)
	total := a.theme.Total.Render(a.amount(breakdown.Total) + "/month")

	tabs := []struct {
		state viewState
		label string
	}{
		{viewGrid, "[1] Home"},
		{viewStats, "[2] Stats"},
		{viewCalendar, "[3] Agenda"},
		{viewSettings, "[4] Settings"},
	}
	var parts []string
	for _, t := range tabs {
		if t.state == a.state {
			parts = append(parts, a.theme.ChipOn.Render(t.label))
		} else {
			parts = append(parts, a.theme.ChipOff.Render(t.label))
		}
	}
	return a.theme.Subtitle.Render("MONTHLY TOTAL") + "  " + total + "\n" + strings.Join(parts, " ")
}

// gridItems returns the filtered subscriptions sorted most expensive
// first. Records and rates are validated before they reach the model,
// so aggregation cannot fail here.
func (a *App) gridItems() []stats.Item {
	breakdown, _ := stats.Aggregate(a.subs, a.base, a.rates, a.filterCategory())
	return breakdown.Items
}

func (a *App) renderFilterChips() string {
	var parts []string
	if a.filter == 0 {
		parts = append(parts, a.theme.ChipOn.Render("All"))
	} else {
		parts = append(parts, a.theme.ChipOff.Render("All"))
	}
	for i, cat := range domain.Categories() {
		label := cat.Icon() + " " + cat.Label()
		if a.filter == i+1 {
			parts = append(parts, a.theme.ChipOn.Render(label))
		} else {
			parts = append(parts, a.theme.ChipOff.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (a *App) renderGrid() string {
	if len(a.subs) == 0 {
		return "No subscriptions yet.\nPress [a] to add your first service.\n\n[q] Quit"
	}

	out := a.renderFilterChips() + "\n\n"
	items := a.gridItems()
	if len(items) == 0 {
		out += a.theme.Faint.Render("Nothing in this category.") + "\n"
	}
	for i, it := range items {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		chip := a.theme.cardStyle(it.Sub.Color).Render(it.Sub.Name)
		per := "/mo"
		if it.Sub.Cycle == money.Yearly {
			per = "/yr"
		}
		line := fmt.Sprintf("%s %s  %s%.2f%s", marker, chip, it.Sub.Currency.Symbol(), it.Sub.Price(), per)
		if it.Sub.Cycle == money.Yearly {
			line += a.theme.Faint.Render(fmt.Sprintf("  ~%s/mo", a.amount(it.Monthly)))
		}
		if i == 0 && a.filter == 0 {
			line += "  " + a.theme.ChipOn.Render("BIGGEST") + " " + a.theme.Faint.Render(it.Sub.Category.Label())
		}
		out += line + "\n"
	}
	out += "\n[a] Add  [enter] Edit  [x] Delete  [←/→] Filter  [b] Currency  [D] Theme  [q] Quit"
	return out
}

func (a *App) renderStats() string {
	breakdown, _ := stats.Aggregate(a.subs, a.base, a.rates, a.filterCategory())

	out := a.renderFilterChips() + "\n\n"
	out += a.theme.Title.Render("Breakdown") + "\n"
	if len(breakdown.Items) == 0 {
		out += a.theme.Faint.Render("No data for this category.") + "\n"
		out += "\n[←/→] Filter  [b] Currency  [q] Quit"
		return out
	}

	for _, it := range breakdown.Items {
		share := it.Share(breakdown.Total)
		bar := strings.Repeat("█", int(share)/4)
		out += fmt.Sprintf("%-24s %10s  %5.1f%%  %s\n", it.Sub.Name, a.amount(it.Monthly), share, bar)
	}
	out += strings.Repeat("─", 48) + "\n"
	out += fmt.Sprintf("%-24s %10s\n", "Total", a.amount(breakdown.Total))
	out += "\n[←/→] Filter  [b] Currency  [q] Quit"
	return out
}

func (a *App) renderCalendar() string {
	year, month := a.month.Year(), a.month.Month()
	today := a.now()

	out := a.theme.Title.Render(fmt.Sprintf("%s %d", month, year)) + "\n\n"
	out += a.theme.Subtitle.Render(" Mo  Tu  We  Th  Fr  Sa  Su") + "\n"

	charges := calendar.MonthCharges(a.subs, year, month)
	offset := calendar.StartOffset(year, month)
	col := 0
	var row strings.Builder
	for i := 0; i < offset; i++ {
		row.WriteString("    ")
		col++
	}
	for day := 1; day <= calendar.DaysIn(year, month); day++ {
		cell := fmt.Sprintf(" %2d ", day)
		daySubs := charges[day]
		isToday := day == today.Day() && month == today.Month() && year == today.Year()
		switch {
		case len(daySubs) > 0:
			top := calendar.MostExpensive(daySubs)
			cell = a.theme.cardStyle(top.Color).Render(fmt.Sprintf("%2d", day)) + "  "
		case isToday:
			cell = a.theme.DayToday.Render(fmt.Sprintf(" %2d ", day))
		default:
			cell = a.theme.DayEmpty.Render(cell)
		}
		row.WriteString(cell)
		col++
		if col == 7 {
			out += row.String() + "\n"
			row.Reset()
			col = 0
		}
	}
	if col > 0 {
		out += row.String() + "\n"
	}

	out += "\n" + a.theme.Title.Render("Upcoming this month") + "\n"
	upcoming := calendar.Upcoming(a.subs, year, month, today)
	if len(upcoming) == 0 {
		out += a.theme.Faint.Render("Nothing else due this month.") + "\n"
	}
	for _, ch := range upcoming {
		when := fmt.Sprintf("on the %d", ch.Day)
		if year == today.Year() && month == today.Month() {
			when = fmt.Sprintf("in %d days", ch.Day-today.Day())
		}
		out += fmt.Sprintf("%2d  %-24s %s%.2f  %s\n",
			ch.Day, ch.Sub.Name, ch.Sub.Currency.Symbol(), ch.Sub.Price(), a.theme.Faint.Render(when))
	}
	out += "\n[←/→] Month  [t] Today  [q] Quit"
	return out
}

func (a *App) renderSettings() string {
	out := a.theme.Title.Render("Settings") + "\n\n"
	out += fmt.Sprintf("Base currency: %s (%s)   [b] cycle\n", a.base, a.base.Symbol())
	themeName := "light"
	if a.dark {
		themeName = "dark"
	}
	out += fmt.Sprintf("Theme: %s   [D] toggle\n", themeName)

	if a.svc.Premium {
		out += "Plan: premium (unlimited subscriptions)   [P] downgrade\n"
	} else {
		out += fmt.Sprintf("Plan: free (%d of %d subscriptions used)   [P] upgrade\n",
			len(a.subs), a.cfg.Premium.FreeLimit)
	}

	out += "\n" + a.theme.Subtitle.Render("Exchange rates (vs EUR)") + "\n"
	for _, c := range money.Currencies() {
		out += fmt.Sprintf("  %s  %.4f\n", c, a.rates[c])
	}
	out += "\n[q] Quit"
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalForm:
		return a.renderForm()
	case modalPaywall:
		return a.theme.Title.Render("Free limit reached") + "\n\n" +
			fmt.Sprintf("The free plan tracks up to %d subscriptions.\n", a.cfg.Premium.FreeLimit) +
			"Upgrade to premium for unlimited tracking.\n\n[p] Upgrade  [esc] Not now"
	case modalConfirmDelete:
		name := ""
		if sub := a.selected(); sub != nil {
			name = sub.Name
		}
		return a.theme.Title.Render("Delete "+name+"?") + "\n\n[y] Yes  [n] No"
	}
	return ""
}

func (a *App) renderForm() string {
	f := &a.form
	title := "New subscription"
	if f.editingID != "" {
		title = "Edit subscription"
	}
	out := a.theme.Title.Render(title) + "\n\n"

	values := [fieldCount]string{
		f.name,
		f.price,
		string(money.Currencies()[f.currencyIdx]),
		[]string{"monthly", "yearly"}[f.cycleIdx],
		domain.Categories()[f.categoryIdx].Label(),
		catalog.BrandColors[f.colorIdx],
		f.date,
	}
	for i := formField(0); i < fieldCount; i++ {
		label := fieldLabels[i]
		if i == f.focus {
			label = a.theme.FocusLabel.Render(label)
		}
		value := values[i]
		if i == fieldColor {
			value = a.theme.cardStyle(catalog.BrandColors[f.colorIdx]).Render("   ") + " " + value
		}
		if i == f.focus && (i == fieldName || i == fieldPrice || i == fieldDate) {
			value += "▌"
		}
		out += fmt.Sprintf("%-16s %s\n", label, value)
		if i == fieldName && len(f.suggestions) > 0 {
			for j, svc := range f.suggestions {
				marker := "  "
				if j == f.sugCursor {
					marker = "▶ "
				}
				out += a.theme.Faint.Render(fmt.Sprintf("  %s%s  €%.2f  %s",
					marker, svc.Name, float64(svc.PriceCents)/100, svc.Category.Label())) + "\n"
			}
		}
	}
	out += "\n[tab/↑/↓] Field  [←/→] Choice  [enter] Next/Save  [ctrl+s] Save  [esc] Cancel"
	return out
}

func (a *App) amount(v float64) string {
	return fmt.Sprintf("%s%.2f", a.base.Symbol(), v)
}
