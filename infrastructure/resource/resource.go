package resource

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// Names of the bundled vector fragments
const (
	LogoPay    = "pay-logo.svg"
	CaptionPay = "pay-caption.svg"
)

//go:embed res/*.svg
var bundled embed.FS

// Loader reads named vector fragments from a file system.
// Nothing is cached: every Load reads the file again.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader over the bundled fragments
func NewLoader() *Loader {
	sub, err := fs.Sub(bundled, "res")
	if err != nil {
		// res/ is embedded at build time
		panic(err)
	}
	return NewFSLoader(sub)
}

// NewDirLoader creates a loader reading fragments from dir
func NewDirLoader(dir string) *Loader {
	return NewFSLoader(os.DirFS(dir))
}

// NewFSLoader creates a loader over an arbitrary file system
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load returns the raw markup of the named fragment
func (l *Loader) Load(name string) (string, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return "", fmt.Errorf("load resource %s: %w", name, err)
	}
	return string(data), nil
}
