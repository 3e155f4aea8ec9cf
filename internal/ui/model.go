package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hberge/lobby/internal/criteria"
	"github.com/hberge/lobby/internal/debounce"
	"github.com/hberge/lobby/internal/favorites"
	"github.com/hberge/lobby/internal/filterstore"
	"github.com/hberge/lobby/internal/hub"
	"github.com/hberge/lobby/internal/results"
	"github.com/hberge/lobby/internal/state"
)

// scopeCycle is the Tab order for search scopes.
var scopeCycle = []criteria.Scope{
	criteria.ScopeAll,
	criteria.ScopeGames,
	criteria.ScopeProviders,
	criteria.ScopeTags,
}

// sortCycle is the order the sort key steps through.
var sortCycle = []criteria.Sort{
	criteria.SortPopular,
	criteria.SortNewest,
	criteria.SortTitleAZ,
	criteria.SortTitleZA,
	criteria.SortRating,
}

// pageSizeSteps are the page sizes the +/- keys step through.
var pageSizeSteps = []int{10, 20, 50, 100}

// Model is the root Bubble Tea model for the lobby browser.
type Model struct {
	filters   *filterstore.Store
	snapshots *state.Store
	favorites *favorites.Store
	linkBar   Link
	debouncer *debounce.Controller

	theme         Theme
	styles        Styles
	keys          keyMap
	onThemeChange func(string)

	search    textinput.Model
	spin      spinner.Model
	pager     paginator.Model
	helpView  help.Model
	searching bool
	showHelp  bool
	showLink  bool

	picker *picker

	// Derived per tick from the shared stores.
	snapshot state.Snapshot
	rows     []hub.Game
	cursor   int

	width  int
	height int
}

func newModel(opts Options, debouncer *debounce.Controller) Model {
	theme := GetTheme(opts.ThemeName)
	styles := theme.Styles()

	search := textinput.New()
	search.Placeholder = "search games, providers, tags"
	search.Prompt = "/ "
	search.CharLimit = 120
	search.SetValue(opts.Filters.Current().SearchText)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.AccentText

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = styles.AccentText.Render("•")
	pager.InactiveDot = styles.FaintText.Render("•")

	m := Model{
		filters:       opts.Filters,
		snapshots:     opts.Snapshots,
		favorites:     opts.Favorites,
		linkBar:       opts.LinkBar,
		debouncer:     debouncer,
		theme:         theme,
		styles:        styles,
		keys:          defaultKeyMap(),
		onThemeChange: opts.OnThemeChange,
		search:        search,
		spin:          spin,
		pager:         pager,
		helpView:      help.New(),
	}
	m.refreshRows()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.spin.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = msg.Width
		return m, nil

	case tickMsg:
		m.refreshRows()
		return m, tick()

	case searchCommittedMsg:
		m.refreshRows()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.picker != nil {
		return m.handlePickerKey(msg)
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = true

	case key.Matches(msg, keys.Search):
		m.searching = true
		m.search.SetValue(m.filters.Current().SearchText)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.PrevPage):
		cur := m.filters.Current()
		m.filters.SetPage(cur.Page - 1)
		m.cursor = 0

	case key.Matches(msg, keys.NextPage):
		cur := m.filters.Current()
		if !m.snapshot.HasPage || cur.Page < m.snapshot.Page.Pagination.TotalPages {
			m.filters.SetPage(cur.Page + 1)
			m.cursor = 0
		}

	case key.Matches(msg, keys.CycleScope):
		m.debouncer.SetScope(nextIn(scopeCycle, m.debouncer.Scope()))
		m.filters.SetScope(m.debouncer.Scope())

	case key.Matches(msg, keys.CycleSort):
		m.filters.SetSort(nextIn(sortCycle, m.filters.Current().SortBy))
		m.cursor = 0

	case key.Matches(msg, keys.Favorite):
		if m.cursor < len(m.rows) {
			m.toggleFavorite(m.rows[m.cursor].ID)
		}

	case key.Matches(msg, keys.FavsOnly):
		m.filters.SetFavoritesOnly(!m.filters.Current().FavoritesOnly)
		m.cursor = 0

	case key.Matches(msg, keys.NewOnly):
		m.filters.SetNewOnly(!m.filters.Current().NewOnly)
		m.cursor = 0

	case key.Matches(msg, keys.HotOnly):
		m.filters.SetHotOnly(!m.filters.Current().HotOnly)
		m.cursor = 0

	case key.Matches(msg, keys.ComingSoon):
		m.filters.SetComingSoonOnly(!m.filters.Current().ComingSoonOnly)
		m.cursor = 0

	case key.Matches(msg, keys.Providers):
		m.picker = newProviderPicker(m.snapshot.Providers, m.filters.Current().Providers)

	case key.Matches(msg, keys.Types):
		m.picker = newTypePicker(m.filters.Current().Types)

	case key.Matches(msg, keys.Tags):
		m.picker = newTagPicker(m.snapshot.Page.Meta.Tags, m.filters.Current().Tags)

	case key.Matches(msg, keys.PageSizeUp):
		m.filters.SetPageSize(stepPageSize(m.filters.Current().PageSize, 1))

	case key.Matches(msg, keys.PageSizeDown):
		m.filters.SetPageSize(stepPageSize(m.filters.Current().PageSize, -1))

	case key.Matches(msg, keys.Reset):
		m.filters.Reset()
		m.search.SetValue("")
		m.debouncer.Clear()
		m.cursor = 0

	case key.Matches(msg, keys.CopyLink):
		m.showLink = !m.showLink

	case key.Matches(msg, keys.Theme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.spin.Style = m.styles.AccentText
		m.pager.ActiveDot = m.styles.AccentText.Render("•")
		m.pager.InactiveDot = m.styles.FaintText.Render("•")
		if m.onThemeChange != nil {
			m.onThemeChange(m.theme.Name)
		}

	}
	m.refreshRows()
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.debouncer.Flush()
		m.searching = false
		m.search.Blur()
		return m, nil

	case tea.KeyEsc:
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.debouncer.Clear()
			return m, nil
		}
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.search.Value()
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.debouncer.Input(after)
	}
	return m, cmd
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.picker
	switch msg.String() {
	case "esc", "q":
		m.picker = nil
		m.cursor = 0
	case "up", "k":
		p.moveCursor(-1)
	case "down", "j":
		p.moveCursor(1)
	case " ", "enter":
		if id, ok := p.selected(); ok {
			switch p.kind {
			case pickProviders:
				m.filters.ToggleProvider(id)
			case pickTypes:
				m.filters.ToggleType(id)
			case pickTags:
				m.filters.ToggleTag(id)
			}
			p.toggle(id)
		}
	}
	m.refreshRows()
	return m, nil
}

// toggleFavorite flips the local favorite flag for a game and logs nothing;
// write failures keep the in-memory flip so the UI stays responsive.
func (m *Model) toggleFavorite(id string) {
	m.favorites.Toggle(id)
	m.refreshRows()
}

// refreshRows re-reads the shared stores and recomputes the visible rows with
// the favorites overlay applied.
func (m *Model) refreshRows() {
	m.snapshot = m.snapshots.Snapshot()
	cur := m.filters.Current()
	m.rows = results.Merge(m.snapshot.Page.Items, m.favorites.IDs(), cur.FavoritesOnly)
	if m.cursor >= len(m.rows) {
		m.cursor = 0
	}

	if m.snapshot.HasPage {
		pages := m.snapshot.Page.Pagination.TotalPages
		if pages < 1 {
			pages = 1
		}
		m.pager.SetTotalPages(pages)
		page := cur.Page - 1
		if page >= pages {
			page = pages - 1
		}
		if page < 0 {
			page = 0
		}
		m.pager.Page = page
	}
}

// nextIn returns the element after current, wrapping; unknown values restart
// the cycle.
func nextIn[T comparable](cycle []T, current T) T {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// stepPageSize moves one step through pageSizeSteps in the given direction.
func stepPageSize(current, dir int) int {
	idx := 0
	for i, size := range pageSizeSteps {
		if size == current {
			idx = i
			break
		}
		if size > current {
			break
		}
		idx = i
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(pageSizeSteps) {
		idx = len(pageSizeSteps) - 1
	}
	return pageSizeSteps[idx]
}

var _ tea.Model = Model{}
