// Package internal provides the core application model for the wbfsmgr TUI.
//
// This package implements the Bubble Tea model pattern for the interactive terminal user interface.
// The model handles:
//   - Screen transitions between the main menu, device selector, file browser and about screen
//   - Background device enumeration and directory listing
//   - The mounted-device warning shown before a device is selected
//
// Discovery state lives in state.App; the Model only keeps what is needed to render screens.
package internal

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"wbfsmgr/internal/browse"
	"wbfsmgr/internal/handlers"
	"wbfsmgr/internal/logger"
	"wbfsmgr/internal/screens"
	"wbfsmgr/internal/state"
)

// Model represents the complete UI state for the wbfsmgr TUI.
// It implements the tea.Model interface.
type Model struct {
	app *state.App

	// Screen and navigation state
	screen     screens.Screen // Current active screen
	lastScreen screens.Screen // Screen to return to from the error screen
	cursor     int            // Current cursor/selection position
	choices    []string       // Available options for current screen

	loading      bool               // A background load for the current screen is running
	message      string             // Status line under the list
	confirmation string             // Confirmation dialog text
	pending      screens.MenuAction // Device awaiting the mounted-device confirmation

	// Display dimensions
	width  int
	height int

	mainMenu    *handlers.MainMenuHandler
	deviceMenu  *handlers.DeviceMenuHandler
	browserMenu *handlers.BrowserMenuHandler

	// sizeOf renders a device capacity for the selector
	sizeOf func(device string) string
}

// InitialModel creates a Model on the main menu.
func InitialModel(app *state.App) Model {
	return Model{
		app:         app,
		screen:      screens.ScreenMain,
		choices:     screens.MainMenuChoices,
		width:       100,
		height:      30,
		mainMenu:    handlers.NewMainMenuHandler(),
		deviceMenu:  handlers.NewDeviceMenuHandler(),
		browserMenu: handlers.NewBrowserMenuHandler(),
		sizeOf:      deviceSize,
	}
}

// Init implements tea.Model.Init(). Devices are loaded when the selector opens.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.Update() and handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case state.DevicesLoadedMsg:
		if msg.Err != nil {
			logger.Warn("device enumeration failed", "error", msg.Err)
		} else {
			m.app.ApplyDevices(msg.List)
		}
		if m.screen != screens.ScreenDeviceSelect {
			// the user left the selector while scanning
			return m, nil
		}
		m.loading = false
		m.refreshDeviceChoices()
		m.cursor = max(m.app.Current(), 0)
		m.message = ""
		if msg.Err != nil {
			m.showError(fmt.Sprintf("Failed to list devices: %v", msg.Err))
		}
		return m, nil

	case state.DirectoryLoadedMsg:
		if m.screen != screens.ScreenBrowser {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			logger.Warn("directory listing failed", "dir", msg.Dir, "error", msg.Err)
			m.message = fmt.Sprintf("Cannot open %s", msg.Dir)
			if m.choices == nil {
				m.choices = screens.BrowserChoices(m.app.Entries())
			}
			return m, nil
		}
		m.app.ApplyDirectory(msg.Dir, msg.Entries)
		m.choices = screens.BrowserChoices(msg.Entries)
		m.cursor = 0
		m.message = ""
		return m, nil

	case state.MountStatusMsg:
		if m.screen != screens.ScreenDeviceSelect {
			return m, nil
		}
		if msg.Err != nil {
			logger.Warn("mount table unreadable", "device", msg.Device, "error", msg.Err)
			m.showError(fmt.Sprintf("Cannot read mount table: %v", msg.Err))
			return m, nil
		}
		if msg.Mounted {
			m.pending = screens.MenuAction{Screen: screens.ScreenDeviceSelect, Index: msg.Index, Target: msg.Device}
			m.confirmation = fmt.Sprintf("Device %s seems to be mounted at %s.\n\nUse it anyway?", msg.Device, msg.MountPoint)
			m.screen = screens.ScreenConfirm
			m.choices = screens.GetMenuChoices(screens.ScreenConfirm)
			m.cursor = 1 // default to No
			return m, nil
		}
		m.selectDevice(msg.Index)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input for the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screens.ScreenAbout:
		return m.backToMain(), nil
	case screens.ScreenError:
		m.screen = m.lastScreen
		m.message = ""
		return m, nil
	}

	switch msg.String() {
	case "q":
		if m.screen == screens.ScreenMain {
			return m, tea.Quit
		}
		return m.backToMain(), nil

	case "esc":
		switch m.screen {
		case screens.ScreenConfirm:
			m.screen = screens.ScreenDeviceSelect
			m.refreshDeviceChoices()
			m.cursor = m.pending.Index
		case screens.ScreenMain:
		default:
			return m.backToMain(), nil
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}

	case "home", "g":
		m.cursor = 0

	case "end", "G":
		m.cursor = max(len(m.choices)-1, 0)

	case "r":
		return m.refresh()

	case ".":
		if m.screen == screens.ScreenBrowser {
			m.app.ToggleHidden()
			m.loading = true
			return m, LoadDirectory(m.app, m.app.Dir())
		}

	case "backspace", "left", "h":
		if m.screen == screens.ScreenBrowser {
			m.loading = true
			return m, LoadDirectory(m.app, m.app.Target(".."))
		}

	case "enter", " ", "right", "l":
		if m.loading {
			return m, nil
		}
		return m.handleSelection()
	}

	return m, nil
}

// handleSelection applies the choice under the cursor.
func (m Model) handleSelection() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screens.ScreenMain:
		screen, operation, choices, cmd := m.mainMenu.HandleSelection(m.cursor)
		if cmd != nil {
			return m, cmd
		}
		m.screen = screen
		m.choices = choices
		m.cursor = 0
		m.message = ""
		switch operation {
		case screens.OpLoadDevices:
			m.loading = true
			return m, LoadDevices(m.app)
		case screens.OpLoadDirectory:
			m.loading = true
			return m, LoadDirectory(m.app, m.app.Dir())
		}

	case screens.ScreenDeviceSelect:
		action := m.deviceMenu.HandleSelection(m.cursor, m.app.Devices())
		if action.Screen == screens.ScreenMain {
			return m.backToMain(), nil
		}
		return m, CheckMounted(m.app, action.Index, action.Target)

	case screens.ScreenConfirm:
		action, accepted := m.deviceMenu.HandleConfirmation(m.cursor, m.pending)
		m.screen = action.Screen
		if accepted {
			m.selectDevice(action.Index)
		} else {
			m.refreshDeviceChoices()
			m.cursor = m.pending.Index
			m.message = "Device not selected"
		}
		m.pending = screens.MenuAction{}

	case screens.ScreenBrowser:
		action := m.browserMenu.HandleSelection(m.cursor, m.app.Entries())
		switch action.Operation {
		case screens.OpLoadDirectory:
			m.loading = true
			return m, LoadDirectory(m.app, m.app.Target(action.Target))
		case screens.OpSelectImage:
			entry := m.app.Entries()[action.Index]
			m.message = fmt.Sprintf("Selected %s (%s)", filepath.Join(m.app.Dir(), entry.Name), browse.FormatSize(entry.Size))
		}
	}

	return m, nil
}

// refresh reloads the data behind the current screen.
func (m Model) refresh() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screens.ScreenDeviceSelect:
		m.loading = true
		return m, LoadDevices(m.app)
	case screens.ScreenBrowser:
		m.loading = true
		return m, LoadDirectory(m.app, m.app.Dir())
	}
	return m, nil
}

func (m *Model) selectDevice(index int) {
	m.screen = screens.ScreenDeviceSelect
	if err := m.app.Select(index); err != nil {
		m.message = err.Error()
	} else if device, ok := m.app.CurrentDevice(); ok {
		m.message = "Selected " + device
		logger.Info("device selected", "device", device)
	}
	m.refreshDeviceChoices()
	m.cursor = max(m.app.Current(), 0)
}

// showError switches to the error screen; any key returns to the current one.
func (m *Model) showError(message string) {
	m.lastScreen = m.screen
	m.screen = screens.ScreenError
	m.message = message
}

func (m *Model) refreshDeviceChoices() {
	m.choices = screens.DeviceChoices(m.app.Devices(), m.app.Current(), m.sizeOf)
}

func (m Model) backToMain() Model {
	m.screen = screens.ScreenMain
	m.choices = screens.GetMenuChoices(screens.ScreenMain)
	m.cursor = 0
	m.message = ""
	m.loading = false
	return m
}

// View implements tea.Model.View() and renders the active screen.
func (m Model) View() string {
	switch m.screen {
	case screens.ScreenMain:
		return m.renderMainMenu()
	case screens.ScreenDeviceSelect:
		return m.renderDeviceSelect()
	case screens.ScreenBrowser:
		return m.renderBrowser()
	case screens.ScreenAbout:
		return m.renderAbout()
	case screens.ScreenConfirm:
		return m.renderConfirmation()
	case screens.ScreenError:
		return m.renderError()
	default:
		return "Unknown screen"
	}
}
