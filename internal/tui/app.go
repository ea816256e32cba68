// Package tui is the terminal shell: a bubbletea model over the
// subscription service with grid, stats, calendar and settings views.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"subtrack/internal/config"
	"subtrack/internal/domain"
	"subtrack/internal/money"
	"subtrack/internal/service"
)

// App ties together views.
type App struct {
	ctx    context.Context
	svc    *service.SubscriptionService
	cfg    config.Config
	rates  money.RateTable
	base   money.Currency
	subs   []domain.Subscription
	state  viewState
	modal  modalState
	filter int // 0 = all, 1.. = Categories()[filter-1]
	cursor int
	month  time.Time // first day of the viewed calendar month
	now    func() time.Time
	form   form
	status string
	dark   bool
	theme  theme
	width  int
}

type viewState string

const (
	viewGrid     viewState = "grid"
	viewStats    viewState = "stats"
	viewCalendar viewState = "calendar"
	viewSettings viewState = "settings"
)

type modalState string

const (
	modalNone          modalState = ""
	modalForm          modalState = "form"
	modalPaywall       modalState = "paywall"
	modalConfirmDelete modalState = "confirmDelete"
)

func New(ctx context.Context, cfg config.Config, svc *service.SubscriptionService, base money.Currency, rates money.RateTable) *App {
	now := time.Now
	today := now()
	return &App{
		ctx:   ctx,
		svc:   svc,
		cfg:   cfg,
		rates: rates,
		base:  base,
		state: viewGrid,
		month: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC),
		now:   now,
		dark:  cfg.UI.DarkMode,
		theme: themeFor(cfg.UI.DarkMode),
		width: 80,
	}
}

func (a *App) Init() tea.Cmd {
	return a.loadSubs()
}

func (a *App) loadSubs() tea.Cmd {
	return func() tea.Msg {
		subs, err := a.svc.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return subsMsg(subs)
	}
}

func (a *App) createCmd(sub domain.Subscription) tea.Cmd {
	return func() tea.Msg {
		if _, err := a.svc.Create(a.ctx, sub); err != nil {
			if errors.Is(err, domain.ErrLimitReached) {
				return limitMsg{}
			}
			return errMsg{err}
		}
		return savedMsg("added " + sub.Name)
	}
}

func (a *App) updateCmd(sub domain.Subscription) tea.Cmd {
	return func() tea.Msg {
		if _, err := a.svc.Update(a.ctx, sub); err != nil {
			return errMsg{err}
		}
		return savedMsg("updated " + sub.Name)
	}
}

func (a *App) deleteCmd(sub domain.Subscription) tea.Cmd {
	return func() tea.Msg {
		if err := a.svc.Delete(a.ctx, sub.ID); err != nil {
			return errMsg{err}
		}
		return savedMsg("deleted " + sub.Name)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		return a, nil
	case subsMsg:
		a.subs = m
		if a.cursor >= len(a.visible()) {
			a.cursor = 0
		}
		return a, nil
	case savedMsg:
		a.status = string(m)
		return a, a.loadSubs()
	case limitMsg:
		a.modal = modalPaywall
		return a, nil
	case errMsg:
		a.status = "error: " + m.Error()
		return a, nil
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "g", "1":
		a.state = viewGrid
		a.status = ""
	case "s", "2":
		a.state = viewStats
		a.status = ""
	case "c", "3":
		a.state = viewCalendar
		a.status = ""
	case "p", "4":
		a.state = viewSettings
		a.status = ""
	case "b":
		a.cycleBaseCurrency()
	case "D":
		a.toggleDark()
	}
	switch a.state {
	case viewGrid:
		return a.handleGridKey(m)
	case viewStats:
		return a.handleStatsKey(m)
	case viewCalendar:
		return a.handleCalendarKey(m)
	case viewSettings:
		return a.handleSettingsKey(m)
	}
	return a, nil
}

func (a *App) handleGridKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "left", "h":
		a.cycleFilter(-1)
	case "right", "l":
		a.cycleFilter(1)
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.visible())-1 {
			a.cursor++
		}
	case "a", "n":
		a.form = newForm(nil)
		a.modal = modalForm
	case "enter", "e":
		if sub := a.selected(); sub != nil {
			a.form = newForm(sub)
			a.modal = modalForm
		}
	case "x", "backspace", "delete":
		if a.selected() != nil {
			a.modal = modalConfirmDelete
		}
	}
	return a, nil
}

func (a *App) handleStatsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "left", "h":
		a.cycleFilter(-1)
	case "right", "l":
		a.cycleFilter(1)
	}
	return a, nil
}

func (a *App) handleCalendarKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "left", "h":
		a.month = a.month.AddDate(0, -1, 0)
	case "right", "l":
		a.month = a.month.AddDate(0, 1, 0)
	case "t":
		today := a.now()
		a.month = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return a, nil
}

func (a *App) handleSettingsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "P":
		a.svc.Premium = !a.svc.Premium
		a.cfg.Premium.Enabled = a.svc.Premium
		a.saveConfig()
		if a.svc.Premium {
			a.status = "premium enabled"
		} else {
			a.status = "premium disabled"
		}
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalForm:
		return a.handleFormKey(m)
	case modalPaywall:
		switch m.String() {
		case "p", "P":
			a.modal = modalNone
			a.svc.Premium = true
			a.cfg.Premium.Enabled = true
			a.saveConfig()
			a.status = "premium enabled"
		case "esc", "q", "enter":
			a.modal = modalNone
		}
	case modalConfirmDelete:
		switch m.String() {
		case "y", "Y":
			a.modal = modalNone
			if sub := a.selected(); sub != nil {
				return a, a.deleteCmd(*sub)
			}
		case "n", "N", "esc":
			a.modal = modalNone
		}
	}
	return a, nil
}

// visible returns the subscriptions under the active category filter,
// in store order.
func (a *App) visible() []domain.Subscription {
	f := a.filterCategory()
	if f == nil {
		return a.subs
	}
	var out []domain.Subscription
	for _, s := range a.subs {
		if s.Category == *f {
			out = append(out, s)
		}
	}
	return out
}

func (a *App) filterCategory() *domain.Category {
	if a.filter == 0 {
		return nil
	}
	c := domain.Categories()[a.filter-1]
	return &c
}

func (a *App) cycleFilter(delta int) {
	n := len(domain.Categories()) + 1
	a.filter = (a.filter + delta + n) % n
	a.cursor = 0
}

func (a *App) cycleBaseCurrency() {
	all := money.Currencies()
	for i, c := range all {
		if c == a.base {
			a.base = all[(i+1)%len(all)]
			break
		}
	}
	a.cfg.UI.BaseCurrency = string(a.base)
	a.saveConfig()
}

func (a *App) toggleDark() {
	a.dark = !a.dark
	a.theme = themeFor(a.dark)
	a.cfg.UI.DarkMode = a.dark
	a.saveConfig()
}

func (a *App) saveConfig() {
	if err := config.Save(a.cfg); err != nil {
		a.status = "error: " + err.Error()
	}
}

// selected returns the subscription under the grid cursor, ordered the
// way the grid displays them (most expensive first).
func (a *App) selected() *domain.Subscription {
	items := a.gridItems()
	if len(items) == 0 || a.cursor >= len(items) {
		return nil
	}
	sub := items[a.cursor].Sub
	return &sub
}

// messages
type subsMsg []domain.Subscription

type savedMsg string

type limitMsg struct{}

type errMsg struct{ error }
