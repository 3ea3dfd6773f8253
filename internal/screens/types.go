package screens

// Screen represents the different screens/views in the application
type Screen int

// Screen constants define all possible screens in the application
const (
	ScreenMain Screen = iota
	ScreenDeviceSelect
	ScreenBrowser
	ScreenAbout
	ScreenConfirm
	ScreenError
)

// String returns the string representation of a screen
func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "Main Menu"
	case ScreenDeviceSelect:
		return "Device Selection"
	case ScreenBrowser:
		return "Disc Image Browser"
	case ScreenAbout:
		return "About"
	case ScreenConfirm:
		return "Confirmation"
	case ScreenError:
		return "Error"
	default:
		return "Unknown"
	}
}
