package browse

import (
	"github.com/dustin/go-humanize"
)

// FormatSize renders a byte count for display, e.g. "4.4 GiB".
func FormatSize(size uint64) string {
	return humanize.IBytes(size)
}

// SizeString is the size column of a listing row. Directories and unknown
// entries have none.
func (e Entry) SizeString() string {
	if e.Kind != File {
		return ""
	}
	return FormatSize(e.Size)
}

// DisplayName marks directories with a trailing slash.
func (e Entry) DisplayName() string {
	if e.Kind == Directory {
		return e.Name + "/"
	}
	return e.Name
}
