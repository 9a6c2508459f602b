package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papeleta/papel/internal/nav"
)

const menuColumns = 2

// App is the top-level Bubble Tea model. It owns the navigation controller,
// the form host, and one form instance per operation card. The hero flag is
// the parent-layout mirror of the host's open state: it is written only by
// the host's emission callback, never directly, so the two can't drift apart.
type App struct {
	registry   *nav.Registry
	controller *nav.Controller
	host       *nav.Host
	forms      map[nav.ViewKey]*Form

	menuCursor int
	showHero   bool

	width  int
	height int
	keys   KeyMap
	styles Styles
}

// NewApp wires the navigation core to the given form specs.
func NewApp(specs []FormSpec, styles Styles) *App {
	registry := nav.DefaultRegistry()
	a := &App{
		registry:   registry,
		controller: &nav.Controller{},
		host:       nav.NewHost(registry),
		forms:      make(map[nav.ViewKey]*Form, len(specs)),
		showHero:   true,
		keys:       DefaultKeyMap(),
		styles:     styles,
	}
	a.host.OnOpenChanged = func(open bool) {
		a.showHero = !open
	}
	for _, spec := range specs {
		a.forms[spec.Key] = NewForm(spec, styles)
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// openForm returns the form for the currently open descriptor, if any.
func (a *App) openForm() (*Form, bool) {
	d, open := a.host.Open()
	if !open {
		return nil, false
	}
	form, ok := a.forms[d.Key]
	return form, ok
}

// navigate runs one menu selection through the controller and syncs the host,
// resetting whichever form stopped being displayed.
func (a *App) navigate(k nav.ViewKey) {
	prev, hadPrev := a.host.Open()
	a.controller.Select(k)
	a.host.Sync(a.controller.Signal())
	a.resetIfLeft(prev, hadPrev)
}

// back closes the open form from the local back action.
func (a *App) back() {
	prev, hadPrev := a.host.Open()
	a.host.Back()
	a.resetIfLeft(prev, hadPrev)
}

// resetIfLeft resets prev when it is no longer the open form. A reset bumps
// the form's submission sequence, so an in-flight response for it is dropped
// on arrival instead of mutating a view that is no longer shown.
func (a *App) resetIfLeft(prev nav.ViewDescriptor, hadPrev bool) {
	if !hadPrev {
		return
	}
	if now, open := a.host.Open(); open && now.Key == prev.Key {
		return
	}
	if form, ok := a.forms[prev.Key]; ok {
		form.Reset()
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case formDoneMsg:
		// Guard: completions only ever land on the form that is still
		// open; anything else is a late response for a closed view.
		if d, open := a.host.Open(); open && d.Key == msg.key {
			a.forms[d.Key].finish(msg)
		}
		return a, nil

	default:
		// Spinner ticks and other component messages go to the open form.
		if form, ok := a.openForm(); ok {
			return a, form.Update(msg, a.keys)
		}
		return a, nil
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys

	switch {
	case key.Matches(msg, k.ForceQuit):
		return a, tea.Quit

	// Top navigation bar, available everywhere.
	case key.Matches(msg, k.NavHome):
		a.navigate(nav.KeyHome)
		return a, nil
	case key.Matches(msg, k.NavUpload):
		a.navigate(nav.KeyUpload)
		return a, nil
	case key.Matches(msg, k.NavDownload):
		a.navigate(nav.KeyDownload)
		return a, nil
	case key.Matches(msg, k.NavMerge):
		a.navigate(nav.KeyMerge)
		return a, nil
	case key.Matches(msg, k.NavSplit):
		a.navigate(nav.KeySplit)
		return a, nil
	}

	if form, ok := a.openForm(); ok {
		if key.Matches(msg, k.Back) {
			a.back()
			return a, nil
		}
		return a, form.Update(msg, a.keys)
	}

	return a.handleMenuKey(msg)
}

// handleMenuKey moves the card cursor and opens cards. Only reached while the
// menu is shown, so plain letter shortcuts are safe here.
func (a *App) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys
	cards := a.registry.Descriptors()

	switch {
	case key.Matches(msg, k.Quit):
		return a, tea.Quit

	case key.Matches(msg, k.Left):
		if a.menuCursor%menuColumns > 0 {
			a.menuCursor--
		}
	case key.Matches(msg, k.Right):
		if a.menuCursor%menuColumns < menuColumns-1 && a.menuCursor+1 < len(cards) {
			a.menuCursor++
		}
	case key.Matches(msg, k.Up):
		if a.menuCursor-menuColumns >= 0 {
			a.menuCursor -= menuColumns
		}
	case key.Matches(msg, k.Down):
		if a.menuCursor+menuColumns < len(cards) {
			a.menuCursor += menuColumns
		}

	case key.Matches(msg, k.Enter):
		if a.menuCursor < len(cards) {
			// Card click: direct selection, not routed through the
			// navigation controller.
			a.host.OpenDirect(cards[a.menuCursor])
		}

	default:
		// Digit shortcuts open cards directly.
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if idx := int(s[0] - '1'); idx < len(cards) {
				a.menuCursor = idx
				a.host.OpenDirect(cards[idx])
			}
		}
	}
	return a, nil
}
