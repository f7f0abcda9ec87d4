// Package output decides where generated QR images are written.
//
// Without an explicit path, each image gets its own directory under a root:
//
//	<root>/<YYYY-MM-DD>_<HHMMSSmmm>_<label>/qrcode_<HHMMSSmmm>.png
//
// Both timestamps come from a single caller-supplied time, so the directory
// and file names always agree.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	// ErrPathCreation is returned when the output directory cannot be created.
	ErrPathCreation = errors.New("cannot create output directory")

	// ErrUnknownKind is returned by ParseKind for unrecognised type names.
	ErrUnknownKind = errors.New("unknown QR code type")
)

// Kind is the type of content a QR code carries.
type Kind int

const (
	Website Kind = iota
	Contact
)

// String returns the CLI name of the kind.
func (k Kind) String() string {
	switch k {
	case Website:
		return "website"
	case Contact:
		return "contact"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Label returns the directory suffix for the kind.
func (k Kind) Label() string {
	switch k {
	case Website:
		return "website_information"
	case Contact:
		return "contact_info"
	default:
		return "unknown"
	}
}

// ParseKind maps "website" or "contact" (any case) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "website":
		return Website, nil
	case "contact":
		return Contact, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

const (
	dateLayout = "2006-01-02" // YYYY-MM-DD
	timeLayout = "150405"     // HHMMSS, milliseconds appended separately
)

// ResolvedPath is the location of one output image. Dir is empty for paths
// supplied explicitly by the caller.
type ResolvedPath struct {
	Dir  string
	Name string
}

// Path returns the full file path. Explicit paths are returned verbatim.
func (p ResolvedPath) Path() string {
	if p.Dir == "" {
		return p.Name
	}
	return filepath.Join(p.Dir, p.Name)
}

// Resolver derives output paths below Root.
type Resolver struct {
	Root string
}

// Resolve returns explicit unchanged when it is non-empty. Otherwise it
// derives a timestamped directory and file name for kind from now. Resolve
// never touches the filesystem or reads the clock.
func (r Resolver) Resolve(kind Kind, explicit string, now time.Time) ResolvedPath {
	if explicit != "" {
		return ResolvedPath{Name: explicit}
	}
	return ResolvedPath{
		Dir:  filepath.Join(r.Root, DirName(kind, now)),
		Name: FileName(now),
	}
}

// DirName returns "<YYYY-MM-DD>_<HHMMSSmmm>_<label>" for kind at now.
func DirName(kind Kind, now time.Time) string {
	return now.Format(dateLayout) + "_" + clock(now) + "_" + kind.Label()
}

// FileName returns "qrcode_<HHMMSSmmm>.png" for now.
func FileName(now time.Time) string {
	return "qrcode_" + clock(now) + ".png"
}

func clock(t time.Time) string {
	return fmt.Sprintf("%s%03d", t.Format(timeLayout), t.Nanosecond()/int(time.Millisecond))
}

// Ensure creates the parent directory of p if it does not already exist.
func Ensure(p ResolvedPath) error {
	dir := filepath.Dir(p.Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w %s: %w", ErrPathCreation, dir, err)
	}
	return nil
}
