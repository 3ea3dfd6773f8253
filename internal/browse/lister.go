// Package browse provides single-level directory listings for the file browser.
// This module handles reading, filtering and ordering directory entries.
package browse

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
	"syscall"

	"github.com/charlievieth/fastwalk"

	"wbfsmgr/internal/logger"
)

// Kind classifies a listed entry.
type Kind int

const (
	File Kind = iota
	Directory
	Unknown // stat failed, e.g. a dangling symlink
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "dir"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind written by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "file":
		*k = File
	case "dir":
		*k = Directory
	case "unknown":
		*k = Unknown
	default:
		return fmt.Errorf("browse: unknown entry kind %q", text)
	}
	return nil
}

// Entry is one row of a directory listing.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Kind Kind   `json:"kind" yaml:"kind"`
	Size uint64 `json:"size" yaml:"size"` // 0 for Unknown
}

// IsDir reports whether the entry can be entered.
func (e Entry) IsDir() bool {
	return e.Kind == Directory
}

// Options controls which entries List returns.
type Options struct {
	Extension  string // Name suffix required of files; empty keeps all
	ShowHidden bool   // Include dot-files
	MaxItems   int    // Cap on returned entries after sorting; 0 is unlimited
}

// ErrOpenDir is wrapped by every OpenError.
var ErrOpenDir = errors.New("cannot open directory")

// OpenError reports a directory that could not be opened or read.
type OpenError struct {
	Dir string
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrOpenDir, e.Dir, e.Err)
}

func (e *OpenError) Unwrap() []error {
	return []error{ErrOpenDir, e.Err}
}

// List reads the immediate children of dir. Directories come first, then
// files and unknown entries, each group in byte-wise name order. The
// extension filter never hides directories or unknown entries.
func List(dir string, opts Options) ([]Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &OpenError{Dir: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &OpenError{Dir: dir, Err: syscall.ENOTDIR}
	}

	var (
		mu      sync.Mutex
		entries []Entry
		readErr error
	)

	conf := &fastwalk.Config{Follow: false, MaxDepth: 1}
	err = fastwalk.Walk(conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// only the root is read, so this is the listing itself failing
			mu.Lock()
			readErr = err
			mu.Unlock()
			return nil
		}
		if fastwalk.DirEntryDepth(d) == 0 {
			return nil
		}

		entry, keep := makeEntry(path, d, opts)
		if keep {
			mu.Lock()
			entries = append(entries, entry)
			mu.Unlock()
		}
		if d.IsDir() {
			return fastwalk.SkipDir
		}
		return nil
	})
	if err == nil {
		err = readErr
	}
	if err != nil {
		return nil, &OpenError{Dir: dir, Err: err}
	}

	sortEntries(entries)
	if opts.MaxItems > 0 && len(entries) > opts.MaxItems {
		entries = entries[:opts.MaxItems]
	}

	logger.Debug("directory listed", "dir", dir, "entries", len(entries))
	return entries, nil
}

func makeEntry(path string, d fs.DirEntry, opts Options) (Entry, bool) {
	name := d.Name()
	if !opts.ShowHidden && isHidden(name) {
		return Entry{}, false
	}

	info, err := fastwalk.StatDirEntry(path, d)
	if err != nil {
		logger.Debug("stat failed", "path", path, "error", err)
		return Entry{Name: name, Kind: Unknown}, true
	}

	size := uint64(max(info.Size(), 0))
	if info.IsDir() {
		return Entry{Name: name, Kind: Directory, Size: size}, true
	}

	if opts.Extension != "" && !strings.HasSuffix(name, opts.Extension) {
		return Entry{}, false
	}
	return Entry{Name: name, Kind: File, Size: size}, true
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		di, dj := entries[i].Kind == Directory, entries[j].Kind == Directory
		if di != dj {
			return di
		}
		return entries[i].Name < entries[j].Name
	})
}
