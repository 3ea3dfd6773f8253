package handlers

import (
	"wbfsmgr/internal/browse"
	"wbfsmgr/internal/screens"
)

// BrowserMenuHandler handles file browser choices
type BrowserMenuHandler struct{}

// NewBrowserMenuHandler creates a new browser menu handler
func NewBrowserMenuHandler() *BrowserMenuHandler {
	return &BrowserMenuHandler{}
}

// HandleSelection maps a cursor position in the browser to an action. Row 0
// is ".."; rows after it index entries.
func (h *BrowserMenuHandler) HandleSelection(cursor int, entries []browse.Entry) screens.MenuAction {
	if cursor == 0 {
		return screens.MenuAction{Screen: screens.ScreenBrowser, Operation: screens.OpLoadDirectory, Target: ".."}
	}

	i := cursor - 1
	if i < 0 || i >= len(entries) {
		return screens.MenuAction{Screen: screens.ScreenBrowser}
	}

	switch entry := entries[i]; entry.Kind {
	case browse.Directory:
		return screens.MenuAction{Screen: screens.ScreenBrowser, Operation: screens.OpLoadDirectory, Index: i, Target: entry.Name}
	case browse.File:
		return screens.MenuAction{Screen: screens.ScreenBrowser, Operation: screens.OpSelectImage, Index: i, Target: entry.Name}
	default:
		// unreadable entries cannot be opened
		return screens.MenuAction{Screen: screens.ScreenBrowser}
	}
}
