package tui

import (
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"subtrack/internal/catalog"
	"subtrack/internal/domain"
	"subtrack/internal/money"
)

type formField int

const (
	fieldName formField = iota
	fieldPrice
	fieldCurrency
	fieldCycle
	fieldCategory
	fieldColor
	fieldDate
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name", "Price", "Currency", "Cycle", "Category", "Color", "First payment",
}

const maxSuggestions = 5

// form is the add/edit modal state. An empty editingID means create.
type form struct {
	editingID   string
	name        string
	price       string
	date        string
	currencyIdx int
	cycleIdx    int
	categoryIdx int
	colorIdx    int
	logoURL     string
	focus       formField
	suggestions []catalog.Service
	sugCursor   int
}

func newForm(sub *domain.Subscription) form {
	if sub == nil {
		return form{date: time.Now().UTC().Format("2006-01-02")}
	}
	f := form{
		editingID: sub.ID,
		name:      sub.Name,
		price:     strconv.FormatFloat(sub.Price(), 'f', 2, 64),
		date:      sub.FirstPayment.Format("2006-01-02"),
		logoURL:   sub.LogoURL,
	}
	for i, c := range money.Currencies() {
		if c == sub.Currency {
			f.currencyIdx = i
		}
	}
	if sub.Cycle == money.Yearly {
		f.cycleIdx = 1
	}
	for i, c := range domain.Categories() {
		if c == sub.Category {
			f.categoryIdx = i
		}
	}
	for i, c := range catalog.BrandColors {
		if c == sub.Color {
			f.colorIdx = i
		}
	}
	return f
}

func (f *form) applySuggestion(svc catalog.Service) {
	f.name = svc.Name
	f.price = strconv.FormatFloat(float64(svc.PriceCents)/100, 'f', 2, 64)
	for i, c := range domain.Categories() {
		if c == svc.Category {
			f.categoryIdx = i
		}
	}
	for i, c := range catalog.BrandColors {
		if c == svc.Color {
			f.colorIdx = i
		}
	}
	f.logoURL = svc.LogoURL()
	f.suggestions = nil
	f.sugCursor = 0
}

func (f *form) refreshSuggestions() {
	f.suggestions = catalog.Suggest(f.name, maxSuggestions)
	f.sugCursor = 0
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &a.form
	switch m.String() {
	case "esc":
		if len(f.suggestions) > 0 {
			f.suggestions = nil
			return a, nil
		}
		a.modal = modalNone
		return a, nil
	case "ctrl+s":
		return a.submitForm()
	case "tab":
		f.focus = (f.focus + 1) % fieldCount
		f.suggestions = nil
		return a, nil
	case "shift+tab":
		f.focus = (f.focus + fieldCount - 1) % fieldCount
		f.suggestions = nil
		return a, nil
	case "up":
		if f.focus == fieldName && len(f.suggestions) > 0 {
			if f.sugCursor > 0 {
				f.sugCursor--
			}
			return a, nil
		}
		if f.focus > 0 {
			f.focus--
		}
		return a, nil
	case "down":
		if f.focus == fieldName && len(f.suggestions) > 0 {
			if f.sugCursor < len(f.suggestions)-1 {
				f.sugCursor++
			}
			return a, nil
		}
		if f.focus < fieldCount-1 {
			f.focus++
		}
		return a, nil
	case "left":
		f.cycleChoice(-1)
		return a, nil
	case "right":
		f.cycleChoice(1)
		return a, nil
	case "enter":
		if f.focus == fieldName && len(f.suggestions) > 0 {
			f.applySuggestion(f.suggestions[f.sugCursor])
			f.focus = fieldPrice
			return a, nil
		}
		if f.focus == fieldCount-1 {
			return a.submitForm()
		}
		f.focus++
		return a, nil
	}

	switch m.Type {
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		switch f.focus {
		case fieldName:
			if len(f.name) > 0 {
				f.name = f.name[:len(f.name)-1]
				f.refreshSuggestions()
			}
		case fieldPrice:
			if len(f.price) > 0 {
				f.price = f.price[:len(f.price)-1]
			}
		case fieldDate:
			if len(f.date) > 0 {
				f.date = f.date[:len(f.date)-1]
			}
		}
	case tea.KeySpace:
		if f.focus == fieldName {
			f.name += " "
			f.refreshSuggestions()
		}
	case tea.KeyRunes:
		switch f.focus {
		case fieldName:
			f.name += string(m.Runes)
			f.refreshSuggestions()
		case fieldPrice:
			f.price += string(m.Runes)
		case fieldDate:
			f.date += string(m.Runes)
		}
	}
	return a, nil
}

func (f *form) cycleChoice(delta int) {
	switch f.focus {
	case fieldCurrency:
		n := len(money.Currencies())
		f.currencyIdx = (f.currencyIdx + delta + n) % n
	case fieldCycle:
		f.cycleIdx = (f.cycleIdx + delta + 2) % 2
	case fieldCategory:
		n := len(domain.Categories())
		f.categoryIdx = (f.categoryIdx + delta + n) % n
	case fieldColor:
		n := len(catalog.BrandColors)
		f.colorIdx = (f.colorIdx + delta + n) % n
	}
}

func (a *App) submitForm() (tea.Model, tea.Cmd) {
	f := &a.form

	if strings.TrimSpace(f.name) == "" {
		a.status = "enter a name"
		f.focus = fieldName
		return a, nil
	}

	priceText := strings.ReplaceAll(strings.TrimSpace(f.price), ",", ".")
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil || price < 0 {
		a.status = "enter a valid non-negative price"
		f.focus = fieldPrice
		return a, nil
	}

	anchor, err := time.Parse("2006-01-02", strings.TrimSpace(f.date))
	if err != nil {
		a.status = "enter the first payment as YYYY-MM-DD"
		f.focus = fieldDate
		return a, nil
	}

	cycle := money.Monthly
	if f.cycleIdx == 1 {
		cycle = money.Yearly
	}
	sub := domain.Subscription{
		ID:           f.editingID,
		Name:         strings.TrimSpace(f.name),
		PriceCents:   int64(math.Round(price * 100)),
		Currency:     money.Currencies()[f.currencyIdx],
		Cycle:        cycle,
		Category:     domain.Categories()[f.categoryIdx],
		FirstPayment: anchor,
		Color:        catalog.BrandColors[f.colorIdx],
		LogoURL:      f.logoURL,
	}
	a.modal = modalNone
	if f.editingID != "" {
		return a, a.updateCmd(sub)
	}
	return a, a.createCmd(sub)
}
