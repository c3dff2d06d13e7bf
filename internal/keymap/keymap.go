package keymap

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global" or "carousel"
}

// All contains every key binding, in help display order.
var All = []Binding{
	{ActionPrev, []string{"h", "left"}, "previous card", "carousel"},
	{ActionNext, []string{"l", "right"}, "next card", "carousel"},
	{ActionFirst, []string{"g", "home"}, "first card", "carousel"},
	{ActionLast, []string{"G", "end"}, "last card", "carousel"},
	{ActionHelp, []string{"?"}, "toggle help", "global"},
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
}

// KeyBinding converts b into a bubbles key binding. The first key is the
// one shown in help.
func (b Binding) KeyBinding() key.Binding {
	helpKey := ""
	if len(b.Keys) > 0 {
		helpKey = b.Keys[0]
		if len(b.Keys) > 1 {
			helpKey += "/" + b.Keys[1]
		}
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKey, b.Description),
	)
}

// HelpKeyMap adapts a set of bindings to the bubbles help component.
type HelpKeyMap struct {
	bindings []Binding
}

var _ help.KeyMap = HelpKeyMap{}

// NewHelpKeyMap builds a help key map from bindings.
func NewHelpKeyMap(bindings []Binding) HelpKeyMap {
	return HelpKeyMap{bindings: bindings}
}

// ShortHelp lists the navigation keys plus help and quit.
func (h HelpKeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(h.bindings))
	for _, b := range h.bindings {
		if b.Action == ActionFirst || b.Action == ActionLast {
			continue
		}
		out = append(out, b.KeyBinding())
	}
	return out
}

// FullHelp groups bindings by context, one column per context.
func (h HelpKeyMap) FullHelp() [][]key.Binding {
	var (
		columns [][]key.Binding
		index   = make(map[string]int)
	)
	for _, b := range h.bindings {
		i, ok := index[b.Context]
		if !ok {
			i = len(columns)
			index[b.Context] = i
			columns = append(columns, nil)
		}
		columns[i] = append(columns[i], b.KeyBinding())
	}
	return columns
}
