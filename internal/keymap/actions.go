// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Carousel navigation
	ActionPrev  Action = "prev"
	ActionNext  Action = "next"
	ActionFirst Action = "first"
	ActionLast  Action = "last"
)
