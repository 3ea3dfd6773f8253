package screens

import (
	"os"
	"strings"
)

// SymbolSet defines the icons used in list labels
type SymbolSet struct {
	Drive   string
	Disc    string
	Folder  string
	Unknown string
	Back    string
	Current string // marks the selected device
}

// UnicodeSymbols provides rich Unicode symbols for modern terminals
var UnicodeSymbols = SymbolSet{
	Drive:   "💾",
	Disc:    "📀",
	Folder:  "📁",
	Unknown: "❓",
	Back:    "⬅️",
	Current: "✔",
}

// ASCIISymbols provides ASCII-only fallbacks for the Linux console and
// other terminals without emoji
var ASCIISymbols = SymbolSet{
	Drive:   "[HD]",
	Disc:    "[CD]",
	Folder:  "[D]",
	Unknown: "[?]",
	Back:    "<-",
	Current: "*",
}

// CurrentSymbols holds the active symbol set based on terminal capabilities
var CurrentSymbols = detectSymbolSet()

// detectSymbolSet determines the appropriate symbol set based on terminal capabilities
func detectSymbolSet() SymbolSet {
	if v := os.Getenv("WBFSMGR_ASCII"); v == "1" || v == "true" {
		return ASCIISymbols
	}

	// the kernel console has no glyphs for emoji
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "linux" || term == "dumb" || term == "vt100" || strings.HasPrefix(term, "xterm-mono") {
		return ASCIISymbols
	}

	// SSH sessions without a UTF-8 locale
	if os.Getenv("SSH_TTY") != "" {
		locale := strings.ToLower(os.Getenv("LC_ALL") + os.Getenv("LANG"))
		if !strings.Contains(locale, "utf-8") && !strings.Contains(locale, "utf8") {
			return ASCIISymbols
		}
	}

	return UnicodeSymbols
}

// ForceASCII switches to ASCII symbols regardless of terminal detection
func ForceASCII() {
	CurrentSymbols = ASCIISymbols
}

// ForceUnicode switches to Unicode symbols regardless of terminal detection
func ForceUnicode() {
	CurrentSymbols = UnicodeSymbols
}
