// Package drives provides block device discovery and mount-state lookup.
// This module handles path canonicalization for device files.
package drives

import (
	"fmt"
	"os"
	"strings"
)

// NormalizePath removes "." and ".." segments from a slash-separated path.
// A ".." drops the closest kept segment before it; at the root (or at the start
// of a relative path) there is nothing to drop and the ".." is discarded.
// Repeated and trailing slashes collapse. No system calls are made.
func NormalizePath(path string) string {
	absolute := strings.HasPrefix(path, "/")

	kept := make([]string, 0, strings.Count(path, "/")+1)
	for _, part := range strings.Split(path, "/") {
		switch part {
		case "", ".":
			continue
		case "..":
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
		default:
			kept = append(kept, part)
		}
	}

	joined := strings.Join(kept, "/")
	if absolute {
		return "/" + joined
	}
	return joined
}

// ResolveSymlink computes where a symlink points given the link's own path and
// its raw target. Relative targets are taken relative to the link's directory
// and normalized. The result is cut to maxLen bytes when maxLen > 0.
//
// Only the one link is resolved; a target that is itself a symlink is returned
// as is. Use Resolver with MaxDepth > 1 to follow chains.
func ResolveSymlink(link, target string, maxLen int) string {
	slash := strings.LastIndexByte(link, '/')
	if strings.HasPrefix(target, "/") || slash < 0 {
		return truncate(target, maxLen)
	}

	dir := link[:slash+1]
	if maxLen > 0 && len(dir) >= maxLen {
		return truncate(link, maxLen)
	}
	return NormalizePath(truncate(dir+target, maxLen))
}

func truncate(s string, maxLen int) string {
	if maxLen > 0 && len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}

// Resolver canonicalizes device paths read from the mount registry.
type Resolver struct {
	MaxDepth int // Links followed per path; 1 when zero
	PathMax  int // Bound passed to ResolveSymlink; DefaultPathMax when zero
}

// Resolve returns the canonical path of device. A device that does not exist
// locally (network shares, vanished devices, dangling links) yields
// ErrResolutionSkipped.
func (r Resolver) Resolve(device string) (string, error) {
	if _, err := os.Stat(device); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrResolutionSkipped, device, err)
	}

	depth := r.MaxDepth
	if depth <= 0 {
		depth = 1
	}
	pathMax := r.PathMax
	if pathMax <= 0 {
		pathMax = DefaultPathMax
	}

	path := device
	for i := 0; i < depth; i++ {
		target, err := os.Readlink(path)
		if err != nil {
			// not a symlink (or no longer one)
			if i == 0 {
				return NormalizePath(path), nil
			}
			break
		}
		path = ResolveSymlink(path, target, pathMax)
	}
	return path, nil
}
