package screens

import (
	"fmt"

	"wbfsmgr/internal/browse"
	"wbfsmgr/internal/drives"
)

// Menu choice constants for different screens
var (
	// MainMenuChoices defines the main menu options in the correct order
	MainMenuChoices = []string{
		"💾 Select WBFS Device",
		"📀 Browse Disc Images",
		"ℹ️ About",
		"❌ Exit",
	}

	// ConfirmationChoices defines standard yes/no choices
	ConfirmationChoices = []string{
		"✅ Yes",
		"❌ No",
	}
)

// BackChoice is the label of the entry that closes a list screen
func BackChoice() string {
	return CurrentSymbols.Back + " Back"
}

// GetMenuChoices returns the fixed menu choices for a given screen
func GetMenuChoices(screen Screen) []string {
	switch screen {
	case ScreenMain:
		return MainMenuChoices
	case ScreenConfirm:
		return ConfirmationChoices
	default:
		return []string{}
	}
}

// DeviceChoices lists the devices followed by a Back entry. The preferred
// (WBFS formatted) device is tagged, as is the current selection.
func DeviceChoices(list drives.DeviceList, current int, sizeOf func(string) string) []string {
	choices := make([]string, 0, len(list.Devices)+1)
	for i, device := range list.Devices {
		label := CurrentSymbols.Drive + " " + device
		if sizeOf != nil {
			if size := sizeOf(device); size != "" {
				label += fmt.Sprintf(" (%s)", size)
			}
		}
		if i == list.Preferred {
			label += " [WBFS]"
		}
		if i == current {
			label += " " + CurrentSymbols.Current
		}
		choices = append(choices, label)
	}
	return append(choices, BackChoice())
}

// BrowserChoices lists ".." then the entries. Directories end in "/" and
// files show their size.
func BrowserChoices(entries []browse.Entry) []string {
	choices := make([]string, 0, len(entries)+1)
	sym := CurrentSymbols
	choices = append(choices, sym.Folder+" ..")
	for _, e := range entries {
		switch e.Kind {
		case browse.Directory:
			choices = append(choices, sym.Folder+" "+e.DisplayName())
		case browse.Unknown:
			choices = append(choices, sym.Unknown+" "+e.Name)
		default:
			choices = append(choices, fmt.Sprintf("%s %s  %s", sym.Disc, e.Name, e.SizeString()))
		}
	}
	return choices
}

// MenuAction represents the result of a menu selection
type MenuAction struct {
	Screen    Screen
	Operation string
	Index     int
	Target    string // Device or entry name the operation applies to
}

// Operations started from menus.
const (
	OpLoadDevices   = "load_devices"
	OpLoadDirectory = "load_directory"
	OpCheckMount    = "check_mount"
	OpSelectImage   = "select_image"
	OpQuit          = "quit"
)

// GetMainMenuAction returns the action for a main menu selection
func GetMainMenuAction(index int) MenuAction {
	switch index {
	case 0: // Select device
		return MenuAction{Screen: ScreenDeviceSelect, Operation: OpLoadDevices}
	case 1: // Browse
		return MenuAction{Screen: ScreenBrowser, Operation: OpLoadDirectory}
	case 2: // About
		return MenuAction{Screen: ScreenAbout}
	case 3: // Exit
		return MenuAction{Screen: ScreenMain, Operation: OpQuit}
	default:
		return MenuAction{Screen: ScreenMain}
	}
}
