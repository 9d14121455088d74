// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionNextSample Action = "next_sample"

	// Scrolling actions
	ActionScrollDown   Action = "scroll_down"
	ActionScrollUp     Action = "scroll_up"
	ActionPageDown     Action = "page_down"
	ActionPageUp       Action = "page_up"
	ActionHalfPageDown Action = "half_page_down"
	ActionHalfPageUp   Action = "half_page_up"
	ActionJumpStart    Action = "jump_start"
	ActionJumpEnd      Action = "jump_end"
)
