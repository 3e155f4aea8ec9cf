// Package ui implements the lobby terminal interface with Bubble Tea.
//
// The model renders entirely from shared read models: the filter store for
// criteria, the snapshot store for catalog data, and the favorites store for
// the local overlay. Keystrokes mutate the filter store; the background
// refresher reacts to those mutations, and the UI picks up new snapshots on
// its tick. The UI itself never talks to the hub.
package ui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hberge/lobby/internal/criteria"
	"github.com/hberge/lobby/internal/debounce"
	"github.com/hberge/lobby/internal/favorites"
	"github.com/hberge/lobby/internal/filterstore"
	"github.com/hberge/lobby/internal/state"
)

// snapshotInterval is how often the UI re-reads the shared stores.
const snapshotInterval = 500 * time.Millisecond

// Link is the shareable-link collaborator rendered in the footer.
type Link interface {
	Link() string
}

// Options configure the UI.
type Options struct {
	Context   context.Context
	Filters   *filterstore.Store
	Snapshots *state.Store
	Favorites *favorites.Store
	LinkBar   Link
	ThemeName string

	// OnThemeChange runs when the user cycles the theme, so the new choice
	// can be persisted. Optional.
	OnThemeChange func(name string)
}

// sender forwards messages to the program once it exists. The debounce timer
// fires on its own goroutine, possibly before the program is constructed.
type sender struct {
	mu      sync.Mutex
	program *tea.Program
}

func (s *sender) attach(p *tea.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.program = p
}

func (s *sender) send(msg tea.Msg) {
	s.mu.Lock()
	p := s.program
	s.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Run starts the UI and blocks until the user quits or the context is
// cancelled.
func Run(opts Options) error {
	relay := &sender{}

	debouncer := debounce.New(debounce.Options{
		Scope: opts.Filters.Current().SearchScope,
		OnCommit: func(value string, scope criteria.Scope) {
			opts.Filters.SetScope(scope)
			opts.Filters.SetSearch(value)
			relay.send(searchCommittedMsg{value: value})
		},
	})
	defer debouncer.Close()

	model := newModel(opts, debouncer)

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(opts.Context),
	)
	relay.attach(program)

	_, err := program.Run()
	if err == tea.ErrProgramKilled && opts.Context.Err() != nil {
		return nil
	}
	return err
}

// tickMsg drives periodic re-reads of the shared stores.
type tickMsg time.Time

// searchCommittedMsg arrives when the debounced search value reached the
// filter store.
type searchCommittedMsg struct {
	value string
}

func tick() tea.Cmd {
	return tea.Tick(snapshotInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
