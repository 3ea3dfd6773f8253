// Package drives provides block device discovery and mount-state lookup.
// This module handles content signature probing of candidate devices.
package drives

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// WBFSMagic is the signature found in the first bytes of a WBFS partition.
var WBFSMagic = []byte("WBFS")

// Prober decides whether a device looks like the target filesystem.
// An error means the answer is unknown; callers treat it as "no".
type Prober interface {
	Probe(device string) (bool, error)
}

// ProbeFunc adapts a plain function to Prober.
type ProbeFunc func(device string) (bool, error)

// Probe calls f(device).
func (f ProbeFunc) Probe(device string) (bool, error) {
	return f(device)
}

// MagicProbe matches devices whose bytes at Offset equal Magic.
type MagicProbe struct {
	Magic  []byte
	Offset int64
}

// NewMagicProbe returns a probe for a signature at the start of the device.
func NewMagicProbe(magic []byte) MagicProbe {
	return MagicProbe{Magic: magic}
}

// Probe reads len(Magic) bytes at Offset. The device is opened non-blocking so
// that removable drives without media do not stall enumeration.
func (p MagicProbe) Probe(device string) (bool, error) {
	if len(p.Magic) == 0 {
		return false, nil
	}

	file, err := os.OpenFile(device, os.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrProbeInconclusive, device, err)
	}
	defer file.Close()

	buf := make([]byte, len(p.Magic))
	if _, err := file.ReadAt(buf, p.Offset); err != nil {
		if err == io.EOF {
			// shorter than the signature: cannot be the target format
			return false, nil
		}
		return false, fmt.Errorf("%w: %s: %v", ErrProbeInconclusive, device, err)
	}

	return bytes.Equal(buf, p.Magic), nil
}
