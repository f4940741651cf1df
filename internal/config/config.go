// Package config loads the optional lui.yaml used by the demo programs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lvtk/lui"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by Resolve.
const FileName = "lui.yaml"

// Defaults used when lui.yaml leaves a value unset.
const (
	DefaultWidth   = 550
	DefaultHeight  = 400
	DefaultRate    = 60
	DefaultBackend = "ebiten"
)

// Config represents the optional lui.yaml configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Main   MainConfig   `yaml:"main"`
}

// WindowConfig describes the demo window.
type WindowConfig struct {
	Title       string `yaml:"title,omitempty"`
	Width       int    `yaml:"width,omitempty"`
	Height      int    `yaml:"height,omitempty"`
	Resizable   bool   `yaml:"resizable,omitempty"`
	Borderless  bool   `yaml:"borderless,omitempty"`
	AlwaysOnTop bool   `yaml:"alwaysOnTop,omitempty"`
}

// MainConfig contains main context settings.
type MainConfig struct {
	Mode           string `yaml:"mode,omitempty"`
	QuitOnLastView *bool  `yaml:"quitOnLastView,omitempty"`
	Debug          bool   `yaml:"debug,omitempty"`
	// Rate is the loop frequency in iterations per second.
	Rate    int    `yaml:"rate,omitempty"`
	Backend string `yaml:"backend,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	ModulePath     string
	Title          string
	Width, Height  int
	Flags          lui.ViewFlags
	Mode           lui.Mode
	QuitOnLastView bool
	Debug          bool
	Rate           int
	Backend        string
}

// LoadOptional reads the file at path if present. A missing file yields an
// empty Config.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

// Resolve loads the file at path (if present) and fills in defaults. The
// default title is derived from the go.mod enclosing dir, if any.
func Resolve(path, dir string) (*Resolved, error) {
	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}

	modulePath := ""
	if root, err := FindModuleRoot(dir); err == nil {
		modulePath, _ = readModulePath(root)
	}

	r := &Resolved{
		ModulePath: modulePath,
		Title:      strings.TrimSpace(cfg.Window.Title),
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Debug:      cfg.Main.Debug,
		Rate:       cfg.Main.Rate,
		Backend:    strings.ToLower(strings.TrimSpace(cfg.Main.Backend)),
	}
	if r.Title == "" {
		r.Title = defaultTitle(modulePath, dir)
	}
	if r.Width < 0 || r.Height < 0 {
		return nil, fmt.Errorf("window size must not be negative (got %dx%d)", r.Width, r.Height)
	}
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}

	if cfg.Window.Resizable {
		r.Flags |= lui.ViewResizable
	}
	if cfg.Window.Borderless {
		r.Flags |= lui.ViewBorderless
	}
	if cfg.Window.AlwaysOnTop {
		r.Flags |= lui.ViewAlwaysOnTop
	}

	switch m := strings.ToLower(strings.TrimSpace(cfg.Main.Mode)); m {
	case "", "program":
		r.Mode = lui.ModeProgram
	case "module":
		r.Mode = lui.ModeModule
	default:
		return nil, fmt.Errorf("main.mode must be \"program\" or \"module\" (got %q)", m)
	}
	r.QuitOnLastView = r.Mode == lui.ModeProgram
	if cfg.Main.QuitOnLastView != nil {
		r.QuitOnLastView = *cfg.Main.QuitOnLastView
	}

	switch {
	case r.Rate == 0:
		r.Rate = DefaultRate
	case r.Rate < 0 || r.Rate > 1000:
		return nil, fmt.Errorf("main.rate must be between 1 and 1000 (got %d)", r.Rate)
	}

	switch r.Backend {
	case "":
		r.Backend = DefaultBackend
	case "ebiten", "headless":
	default:
		return nil, fmt.Errorf("main.backend must be \"ebiten\" or \"headless\" (got %q)", r.Backend)
	}
	return r, nil
}

// Apply configures m from r.
func (r *Resolved) Apply(m *lui.Main) {
	m.SetQuitOnLastViewClosed(r.QuitOnLastView)
	m.SetDebugMode(r.Debug)
}

// FindModuleRoot walks up from dir to find go.mod.
func FindModuleRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func readModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultTitle is the last element of the module path without its major
// version suffix, or the directory name.
func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "lui"
	}
	return base
}
