package ui

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/hberge/lobby/internal/hub"
)

type pickerKind int

const (
	pickProviders pickerKind = iota
	pickTypes
	pickTags
)

// gameTypes is the fixed set of catalog game types the hub serves.
var gameTypes = []string{
	"slots",
	"table",
	"live",
	"jackpot",
	"instant",
	"video-poker",
}

// pickerOption is one selectable row.
type pickerOption struct {
	id    string
	label string
}

// picker is a modal multi-select overlay for providers, types, or tags.
type picker struct {
	kind    pickerKind
	title   string
	options []pickerOption
	checked map[string]bool
	cursor  int
}

// displayCollator orders human-facing names; collation handles studios with
// accented names the way a byte sort does not.
var displayCollator = collate.New(language.English, collate.IgnoreCase)

func newProviderPicker(providers []hub.Provider, selected []string) *picker {
	options := make([]pickerOption, 0, len(providers))
	for _, p := range providers {
		label := p.Name
		if label == "" {
			label = p.ID
		}
		options = append(options, pickerOption{id: p.ID, label: label})
	}
	sortOptions(options)
	return newPicker(pickProviders, "Providers", options, selected)
}

func newTypePicker(selected []string) *picker {
	options := make([]pickerOption, 0, len(gameTypes))
	for _, t := range gameTypes {
		options = append(options, pickerOption{id: t, label: t})
	}
	return newPicker(pickTypes, "Game types", options, selected)
}

func newTagPicker(tags []string, selected []string) *picker {
	options := make([]pickerOption, 0, len(tags))
	for _, t := range tags {
		options = append(options, pickerOption{id: t, label: t})
	}
	sortOptions(options)
	return newPicker(pickTags, "Tags", options, selected)
}

func newPicker(kind pickerKind, title string, options []pickerOption, selected []string) *picker {
	checked := make(map[string]bool, len(selected))
	for _, id := range selected {
		checked[id] = true
	}
	return &picker{
		kind:    kind,
		title:   title,
		options: options,
		checked: checked,
	}
}

func sortOptions(options []pickerOption) {
	sort.Slice(options, func(i, j int) bool {
		return displayCollator.CompareString(options[i].label, options[j].label) < 0
	})
}

func (p *picker) moveCursor(delta int) {
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.options) {
		p.cursor = len(p.options) - 1
	}
}

// selected returns the id under the cursor.
func (p *picker) selected() (string, bool) {
	if p.cursor < 0 || p.cursor >= len(p.options) {
		return "", false
	}
	return p.options[p.cursor].id, true
}

func (p *picker) toggle(id string) {
	p.checked[id] = !p.checked[id]
}
