package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wbfsmgr/internal/drives"
	"wbfsmgr/internal/screens"
)

// Styles
var (
	// Color palette - Tokyo Night inspired
	primaryColor    = lipgloss.Color("#7aa2f7") // Tokyo Night blue
	secondaryColor  = lipgloss.Color("#9ece6a") // Tokyo Night green
	warningColor    = lipgloss.Color("#e0af68") // Tokyo Night yellow
	errorColor      = lipgloss.Color("#f7768e") // Tokyo Night red
	textColor       = lipgloss.Color("#c0caf5") // Tokyo Night foreground
	dimColor        = lipgloss.Color("#565f89") // Tokyo Night comment
	backgroundColor = lipgloss.Color("#1a1b26") // Tokyo Night background
	borderColor     = lipgloss.Color("#414868") // Tokyo Night border

	asciiStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true).
			Align(lipgloss.Center).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Align(lipgloss.Center).
			MarginBottom(1)

	menuItemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2).
			Foreground(textColor)

	// Menu selection styles - rounded border, no margins
	selectedMenuItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				PaddingRight(2).
				Background(primaryColor).
				Foreground(backgroundColor).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor)

	// Preferred (WBFS formatted) device when not under the cursor
	preferredMenuItemStyle = menuItemStyle.
				Foreground(secondaryColor).
				Bold(true)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(2, 3).
			Margin(1)

	warningStyle = lipgloss.NewStyle().
			Foreground(backgroundColor).
			Background(warningColor).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warningColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(backgroundColor).
			Background(errorColor).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Align(lipgloss.Center)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Align(lipgloss.Center).
			Italic(true).
			MarginTop(2)

	infoBoxStyle = lipgloss.NewStyle().
			Background(borderColor).
			Foreground(textColor).
			Padding(0, 1).
			Margin(0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor)
)

// ASCII art for the program name
const asciiArt = `▖  ▖▖ ▄▖▄▖
▌▞▖▌▙▘▙▖▚
▛ ▝▌▙▘▌ ▄▌ mgr`

// Rows of the file browser shown at once when the terminal is too small to
// report its height.
const minBrowserRows = 5

// Render the main menu
func (m Model) renderMainMenu() string {
	var s strings.Builder

	s.WriteString(m.renderHeader() + "\n\n")
	m.writeChoices(&s, 0, len(m.choices))

	if device, ok := m.app.CurrentDevice(); ok {
		s.WriteString("\n" + infoBoxStyle.Render("💾 Current device: "+device) + "\n")
	}

	s.WriteString("\n" + m.renderHelp())

	return m.place(s.String())
}

// Render device selection screen
func (m Model) renderDeviceSelect() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("💾 Select WBFS Device") + "\n\n")

	switch {
	case m.loading:
		s.WriteString(infoBoxStyle.Render("🔍 Scanning for devices...") + "\n")
	case len(m.app.Devices().Devices) == 0:
		s.WriteString(warningStyle.Render("⚠️  No devices found") + "\n\n")
		m.writeChoices(&s, 0, len(m.choices))
	default:
		info := "Select the device to work with."
		if m.app.Devices().Preferred == drives.NoPreferred {
			info += "\nNo WBFS formatted device was detected."
		}
		s.WriteString(infoBoxStyle.Render(info) + "\n\n")
		m.writeChoices(&s, 0, len(m.choices))
	}

	m.writeMessage(&s)
	s.WriteString("\n" + helpStyle.Render("↑/↓: navigate • enter: select • r: rescan • esc: back"))

	return m.place(s.String())
}

// Render the disc image browser
func (m Model) renderBrowser() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("📀 Browse Disc Images") + "\n")
	dir := "📂 " + m.app.Dir()
	if m.app.ShowHidden() {
		dir += "  (hidden files shown)"
	}
	s.WriteString(subtitleStyle.Render(dir) + "\n")

	if m.loading && len(m.choices) == 0 {
		s.WriteString(infoBoxStyle.Render("🔍 Reading directory...") + "\n")
	} else {
		start, end := m.browserWindow()
		if start > 0 {
			s.WriteString(menuItemStyle.Foreground(dimColor).Render(fmt.Sprintf("  ↑ %d more", start)) + "\n")
		}
		m.writeChoices(&s, start, end)
		if end < len(m.choices) {
			s.WriteString(menuItemStyle.Foreground(dimColor).Render(fmt.Sprintf("  ↓ %d more", len(m.choices)-end)) + "\n")
		}
		if len(m.choices) == 1 {
			s.WriteString("\n" + infoBoxStyle.Render(m.emptyDirectoryText()) + "\n")
		}
	}

	m.writeMessage(&s)
	s.WriteString("\n" + helpStyle.Render("↑/↓: navigate • enter: open • backspace: up • .: hidden files • r: reload • esc: back"))

	return m.place(s.String())
}

// browserWindow returns the range of choices that fits on screen, keeping the
// cursor visible.
func (m Model) browserWindow() (start, end int) {
	rows := max(m.height-20, minBrowserRows)
	if len(m.choices) <= rows {
		return 0, len(m.choices)
	}
	start = m.cursor - rows/2
	start = max(start, 0)
	start = min(start, len(m.choices)-rows)
	return start, start + rows
}

func (m Model) emptyDirectoryText() string {
	ext := m.app.Config().Browser.Extension
	if ext == "" {
		return "This directory is empty"
	}
	return fmt.Sprintf("No .%s files or directories here", ext)
}

// Render about screen
func (m Model) renderAbout() string {
	var s strings.Builder

	s.WriteString(asciiStyle.Render(asciiArt) + "\n")
	s.WriteString(titleStyle.Render("ℹ️ About "+AppName) + "\n\n")

	about := GetAboutText() + `

Powered by Bubble Tea & Lipgloss

Features:
• Finds block devices from the kernel partition table or /dev
• Detects WBFS formatted devices by their signature
• Warns before using a mounted device
• Browses directories for disc images
• Scriptable CLI with table, JSON and YAML output

Press any key to return to main menu`

	info := lipgloss.NewStyle().
		Foreground(textColor).
		Margin(0, 2).
		Align(lipgloss.Left).
		Render(about)

	s.WriteString(info)

	return m.place(s.String())
}

// Render confirmation dialog
func (m Model) renderConfirmation() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("⚠️  Confirmation Required") + "\n\n")
	s.WriteString(warningStyle.Render(m.confirmation) + "\n\n")
	m.writeChoices(&s, 0, len(m.choices))

	s.WriteString("\n" + helpStyle.Render("↑/↓: navigate • enter: select • esc: cancel"))

	content := borderStyle.Width(m.width - 4).Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Render error screen that requires manual dismissal
func (m Model) renderError() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("❌ Error") + "\n\n")
	s.WriteString(errorStyle.Render(m.message) + "\n\n")
	s.WriteString(helpStyle.Render("Press any key to continue"))

	return m.place(s.String())
}

// Render header with ASCII art
func (m Model) renderHeader() string {
	ascii := asciiStyle.Render(asciiArt)
	title := titleStyle.Render(AppDesc)
	subtitle := subtitleStyle.Render(GetSubtitle())

	return ascii + "\n" + title + "\n" + subtitle
}

// Render help text
func (m Model) renderHelp() string {
	return helpStyle.Render("↑/↓: navigate • enter: select • q: quit • esc: back")
}

// writeChoices renders choices[start:end] with the cursor highlighted. On the
// device selector the preferred device stands out.
func (m Model) writeChoices(s *strings.Builder, start, end int) {
	preferred := -1
	if m.screen == screens.ScreenDeviceSelect {
		preferred = m.app.Devices().Preferred
	}
	for i := start; i < end; i++ {
		choice := m.choices[i]
		switch {
		case m.cursor == i:
			s.WriteString(selectedMenuItemStyle.Render("❯ "+choice) + "\n")
		case i == preferred:
			s.WriteString(preferredMenuItemStyle.Render("  "+choice) + "\n")
		default:
			s.WriteString(menuItemStyle.Render("  "+choice) + "\n")
		}
	}
}

func (m Model) writeMessage(s *strings.Builder) {
	if m.message == "" {
		return
	}
	style := statusStyle
	if strings.HasPrefix(m.message, "Cannot") || strings.HasPrefix(m.message, "Failed") {
		style = errorStyle
	}
	s.WriteString("\n" + style.Render(m.message) + "\n")
}

// place centers content in a bordered box.
func (m Model) place(content string) string {
	box := borderStyle.Width(m.width - 8).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
