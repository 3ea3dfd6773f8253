package handlers

import (
	"wbfsmgr/internal/screens"

	tea "github.com/charmbracelet/bubbletea"
)

// MainMenuHandler handles main menu selections and returns the next screen state
type MainMenuHandler struct{}

// NewMainMenuHandler creates a new main menu handler
func NewMainMenuHandler() *MainMenuHandler {
	return &MainMenuHandler{}
}

// HandleSelection processes a main menu selection and returns the next state.
// The operation tells the caller which background load to start.
func (h *MainMenuHandler) HandleSelection(cursor int) (screen screens.Screen, operation string, choices []string, cmd tea.Cmd) {
	action := screens.GetMainMenuAction(cursor)
	if action.Operation == screens.OpQuit {
		return screens.ScreenMain, "", nil, tea.Quit
	}
	if action.Screen == screens.ScreenMain {
		return screens.ScreenMain, "", screens.MainMenuChoices, nil
	}
	// list screens fill their choices once loaded
	return action.Screen, action.Operation, nil, nil
}
