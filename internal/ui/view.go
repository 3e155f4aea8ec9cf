package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hberge/lobby/internal/criteria"
	"github.com/hberge/lobby/internal/hub"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n")

	switch {
	case m.showHelp:
		b.WriteString(m.renderHelp())
	case m.picker != nil:
		b.WriteString(m.renderPicker())
	default:
		b.WriteString(m.renderResults())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the top status bar.
func (m Model) renderHeader() string {
	styles := m.styles
	var parts []string

	parts = append(parts, styles.Logo.Render("lobby"))

	switch {
	case m.snapshot.IsOffline():
		parts = append(parts, styles.BadgeStyle("offline").Render("OFFLINE"))
	case !m.snapshot.HasPage && m.snapshot.LastError != nil:
		parts = append(parts, styles.DangerText.Render("hub unreachable"))
	case !m.snapshot.HasPage:
		parts = append(parts, m.spin.View()+styles.WarningText.Render(" connecting..."))
	}

	if m.snapshot.HasPage {
		pg := m.snapshot.Page.Pagination
		parts = append(parts, styles.MutedText.Render("Games:")+" "+
			styles.Text.Render(fmt.Sprintf("%d", pg.Total)))
		parts = append(parts, styles.MutedText.Render("Page:")+" "+
			styles.Text.Render(fmt.Sprintf("%d/%d", pg.Page, max(pg.TotalPages, 1))))
	}

	if n := m.filters.ActiveFilterCount(); n > 0 {
		parts = append(parts, styles.AccentText.Render(fmt.Sprintf("Filters: %d", n)))
	}

	if favs := m.favorites.Count(); favs > 0 {
		parts = append(parts, styles.WarningText.Render(fmt.Sprintf("★ %d", favs)))
	}

	if ts := formatTimestamp(m.snapshot.LastUpdated); ts != "" {
		parts = append(parts, styles.MutedText.Render(ts))
	}

	if m.snapshot.LastError != nil && m.snapshot.HasPage {
		parts = append(parts, styles.DangerText.Render("stale: "+truncate(m.snapshot.LastError.Error(), 40)))
	}

	return m.styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderFilterLine shows the search box or a summary of the active criteria.
func (m Model) renderFilterLine() string {
	styles := m.styles
	if m.searching {
		scope := styles.MutedText.Render("[" + string(m.debouncer.Scope()) + "]")
		return styles.Header.Width(m.width).Render(m.search.View() + " " + scope)
	}

	if m.showLink && m.linkBar != nil {
		link := m.linkBar.Link()
		if link == "" {
			link = "(no filters, nothing to share)"
		}
		return styles.Header.Width(m.width).Render(
			styles.MutedText.Render("link: ") + styles.AccentText.Render(link))
	}

	cur := m.filters.Current()
	var chips []string

	if cur.SearchText != "" {
		label := cur.SearchText
		if cur.SearchScope != criteria.ScopeAll {
			label += " in " + string(cur.SearchScope)
		}
		chips = append(chips, styles.AccentText.Render("search:")+styles.Text.Render(label))
	}
	if len(cur.Providers) > 0 {
		chips = append(chips, styles.AccentText.Render("providers:")+styles.Text.Render(strings.Join(cur.Providers, ",")))
	}
	if len(cur.Types) > 0 {
		chips = append(chips, styles.AccentText.Render("types:")+styles.Text.Render(strings.Join(cur.Types, ",")))
	}
	if len(cur.Tags) > 0 {
		chips = append(chips, styles.AccentText.Render("tags:")+styles.Text.Render(strings.Join(cur.Tags, ",")))
	}
	if cur.FavoritesOnly {
		chips = append(chips, styles.WarningText.Render("★ favorites"))
	}
	if cur.NewOnly {
		chips = append(chips, styles.SuccessText.Render("new"))
	}
	if cur.HotOnly {
		chips = append(chips, styles.DangerText.Render("hot"))
	}
	if cur.ComingSoonOnly {
		chips = append(chips, styles.InfoText.Render("coming soon"))
	}
	if cur.RTPMin != criteria.RTPUnset || cur.RTPMax != criteria.RTPUnset {
		chips = append(chips, styles.AccentText.Render("rtp:")+styles.Text.Render(formatRTPRange(cur.RTPMin, cur.RTPMax)))
	}

	sortLabel := styles.MutedText.Render("sort: " + string(cur.SortBy))
	if len(chips) == 0 {
		return styles.Header.Width(m.width).Render(styles.FaintText.Render("no filters") + "  " + sortLabel)
	}
	return styles.Header.Width(m.width).Render(strings.Join(chips, "  ") + "  " + sortLabel)
}

// renderResults renders the game list for the current page.
func (m Model) renderResults() string {
	styles := m.styles

	if !m.snapshot.HasPage {
		return styles.MutedText.Render("  waiting for the hub...")
	}
	if len(m.rows) == 0 {
		return styles.MutedText.Render("  no games match the current filters")
	}

	visible := m.height - 6 // header, filter line, footer, padding
	if visible < 1 {
		visible = len(m.rows)
	}

	var b strings.Builder
	for i, game := range m.rows {
		if i >= visible {
			b.WriteString(styles.FaintText.Render(fmt.Sprintf("  … %d more on this page", len(m.rows)-visible)))
			b.WriteString("\n")
			break
		}
		line := m.renderGameRow(game)
		if i == m.cursor {
			line = styles.Selected.Width(m.width).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderGameRow formats one game line: star, title, provider, badges, RTP.
func (m Model) renderGameRow(game hub.Game) string {
	styles := m.styles

	star := "  "
	if game.Favorite {
		star = styles.WarningText.Render("★ ")
	}

	title := truncate(game.Title, 36)
	provider := styles.MutedText.Render(truncate(game.Provider, 16))

	var badges []string
	if game.New {
		badges = append(badges, styles.BadgeStyle("new").Render("NEW"))
	}
	if game.Hot {
		badges = append(badges, styles.BadgeStyle("hot").Render("HOT"))
	}
	if game.ComingSoon {
		badges = append(badges, styles.BadgeStyle("coming").Render("SOON"))
	}

	rtp := ""
	if game.RTP > 0 {
		rtp = styles.FaintText.Render(fmt.Sprintf("RTP %.1f%%", game.RTP))
	}

	cells := []string{
		" " + star + styles.Text.Render(fmt.Sprintf("%-36s", title)),
		fmt.Sprintf("%-16s", provider),
		rtp,
	}
	cells = append(cells, badges...)
	return strings.Join(cells, " ")
}

// renderPicker renders the modal multi-select overlay.
func (m Model) renderPicker() string {
	styles := m.styles
	p := m.picker

	var b strings.Builder
	b.WriteString(styles.AccentText.Render(p.title))
	b.WriteString("\n")

	if len(p.options) == 0 {
		b.WriteString(styles.MutedText.Render("nothing to pick yet"))
	}
	for i, opt := range p.options {
		mark := "[ ]"
		if p.checked[opt.id] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, opt.label)
		if i == p.cursor {
			line = styles.Selected.Render(line)
		} else {
			line = styles.Text.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render("space toggle · esc close"))

	return styles.PanelFocus.Render(b.String())
}

// renderHelp renders the full key binding reference.
func (m Model) renderHelp() string {
	m.helpView.ShowAll = true
	return lipgloss.NewStyle().Padding(1, 2).Render(m.helpView.View(m.keys))
}

// renderFooter renders the command hints, page dots, and the shareable link.
func (m Model) renderFooter() string {
	styles := m.styles

	left := m.helpView.ShortHelpView(m.keys.ShortHelp())
	dots := ""
	if m.snapshot.HasPage && m.snapshot.Page.Pagination.TotalPages > 1 {
		dots = m.pager.View()
	}

	link := ""
	if m.linkBar != nil {
		if raw := m.linkBar.Link(); raw != "" {
			link = styles.AccentText.Render(truncateMiddle(raw, max(m.width/2, 20)))
		}
	}

	parts := []string{left}
	if dots != "" {
		parts = append(parts, dots)
	}
	if link != "" {
		parts = append(parts, link)
	}
	return styles.Footer.Width(m.width).Render(strings.Join(parts, "  "))
}

// formatTimestamp formats the last update time with a relative indicator.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	since := time.Since(t)
	out := t.Format("15:04:05")
	switch {
	case since < time.Minute:
		out += " (now)"
	case since < time.Hour:
		out += fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	case since < 24*time.Hour:
		out += fmt.Sprintf(" (%dh ago)", int(since.Hours()))
	}
	return out
}

// formatRTPRange renders the active RTP bounds for the filter chip line.
func formatRTPRange(min, max float64) string {
	switch {
	case min != criteria.RTPUnset && max != criteria.RTPUnset:
		return fmt.Sprintf("%.1f–%.1f%%", min, max)
	case min != criteria.RTPUnset:
		return fmt.Sprintf("≥%.1f%%", min)
	case max != criteria.RTPUnset:
		return fmt.Sprintf("≤%.1f%%", max)
	default:
		return ""
	}
}
