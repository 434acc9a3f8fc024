package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/atomicstack/menuctl/internal/app"
	"github.com/atomicstack/menuctl/internal/core"
	"github.com/atomicstack/menuctl/internal/menu"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config captures runtime configuration for the application.
type Config struct {
	App        app.Config
	Logging    Logging
	Features   Features
	ConfigFile string
	Flags      map[string]string
	Args       []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose  bool
	Advanced bool
}

// File mirrors config.toml.
type File struct {
	Root     string            `koanf:"root"`
	Width    int               `koanf:"width"`
	Height   int               `koanf:"height"`
	Footer   bool              `koanf:"footer"`
	Verbose  bool              `koanf:"verbose"`
	Advanced bool              `koanf:"advanced"`
	LogFile  string            `koanf:"log_file"`
	Trace    bool              `koanf:"trace"`
	Core     CoreFile          `koanf:"core"`
	Settings map[string]string `koanf:"settings"`
	Cores    []CoreDefinition  `koanf:"cores"`
}

// CoreFile is the [core] table: the core reported when nothing is loaded.
type CoreFile struct {
	Name    string `koanf:"name"`
	Version string `koanf:"version"`
}

// CoreDefinition is one [[cores]] entry.
type CoreDefinition struct {
	Name       string   `koanf:"name"`
	Version    string   `koanf:"version"`
	Extensions []string `koanf:"extensions"`
}

const (
	envConfigFile = "MENUCTL_CONFIG"
	envRoot       = "MENUCTL_ROOT"
	envWidth      = "MENUCTL_WIDTH"
	envHeight     = "MENUCTL_HEIGHT"
	envShowFooter = "MENUCTL_FOOTER"
	envVerbose    = "MENUCTL_VERBOSE"
	envAdvanced   = "MENUCTL_ADVANCED"
	envTrace      = "MENUCTL_TRACE"
	envLogFile    = "MENUCTL_LOG_FILE"

	configRelPath = "menuctl/config.toml"
)

// Load parses configuration from the config file, environment variables and
// CLI arguments.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Later sources
// win: config file, then environment, then flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("menuctl", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configFile := fs.String("config", "", "path to config.toml (defaults to the XDG config directory)")
	root := fs.String("root", "", "directory the file browser opens (defaults to the working directory)")
	width := fs.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", false, "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", false, "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", false, "print success messages for actions")
	advanced := fs.Bool("advanced", false, "show advanced settings")
	logFile := fs.String("log-file", "", "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path := envOrDefault(env, envConfigFile, "")
	if set["config"] {
		path = *configFile
	}
	fileCfg, path, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	values := fileCfg
	values.Root = envOrDefault(env, envRoot, values.Root)
	values.Width = envOrInt(env, envWidth, values.Width)
	values.Height = envOrInt(env, envHeight, values.Height)
	values.Footer = envOrBool(env, envShowFooter, values.Footer)
	values.Verbose = envOrBool(env, envVerbose, values.Verbose)
	values.Advanced = envOrBool(env, envAdvanced, values.Advanced)
	values.Trace = envOrBool(env, envTrace, values.Trace)
	values.LogFile = envOrDefault(env, envLogFile, values.LogFile)

	if set["root"] {
		values.Root = *root
	}
	if set["width"] {
		values.Width = *width
	}
	if set["height"] {
		values.Height = *height
	}
	if set["footer"] {
		values.Footer = *footer
	}
	if set["verbose"] {
		values.Verbose = *verbose
	}
	if set["advanced"] {
		values.Advanced = *advanced
	}
	if set["trace"] {
		values.Trace = *trace
	}
	if set["log-file"] {
		values.LogFile = *logFile
	}

	if values.Width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", values.Width)
	}
	if values.Height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", values.Height)
	}
	if values.Root == "" {
		values.Root = "."
	}
	rootPath, err := filepath.Abs(expandPath(values.Root))
	if err != nil {
		return Config{}, fmt.Errorf("resolve root %q: %w", values.Root, err)
	}

	cfg := Config{
		App: app.Config{
			Root:       rootPath,
			Width:      values.Width,
			Height:     values.Height,
			ShowFooter: values.Footer,
			Verbose:    values.Verbose,
			Advanced:   values.Advanced,
			Core:       menu.CoreInfo{Name: values.Core.Name, Version: values.Core.Version},
			Cores:      coreDefinitions(values.Cores),
			Settings:   values.Settings,
		},
		Logging: Logging{
			FilePath: expandPath(values.LogFile),
			Trace:    values.Trace,
		},
		Features: Features{
			Verbose:  values.Verbose,
			Advanced: values.Advanced,
		},
		ConfigFile: path,
		Flags: map[string]string{
			"config":   path,
			"root":     rootPath,
			"width":    strconv.Itoa(values.Width),
			"height":   strconv.Itoa(values.Height),
			"footer":   strconv.FormatBool(values.Footer),
			"trace":    strconv.FormatBool(values.Trace),
			"verbose":  strconv.FormatBool(values.Verbose),
			"advanced": strconv.FormatBool(values.Advanced),
			"logFile":  values.LogFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// readFile loads path, or the XDG config file when path is empty. A missing
// XDG file is not an error; a missing explicit one is.
func readFile(path string) (File, string, error) {
	var out File
	if path == "" {
		found, err := xdg.SearchConfigFile(configRelPath)
		if err != nil {
			return out, "", nil
		}
		path = found
	}
	path = expandPath(path)
	if _, err := os.Stat(path); err != nil {
		return out, "", fmt.Errorf("config file: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return out, "", fmt.Errorf("parse %s: %w", path, err)
	}
	if err := k.Unmarshal("", &out); err != nil {
		return out, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return out, path, nil
}

func coreDefinitions(defs []CoreDefinition) []core.Definition {
	if len(defs) == 0 {
		return nil
	}
	out := make([]core.Definition, 0, len(defs))
	for _, def := range defs {
		out = append(out, core.Definition{
			Name:       def.Name,
			Version:    def.Version,
			Extensions: append([]string(nil), def.Extensions...),
		})
	}
	return out
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the browser root exists and every configured core can
// be matched by extension.
func Validate(cfg Config) error {
	info, err := os.Stat(cfg.App.Root)
	if err != nil {
		return fmt.Errorf("root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %s: %w", cfg.App.Root, errNotDirectory)
	}
	var errs []error
	for i, def := range cfg.App.Cores {
		if strings.TrimSpace(def.Name) == "" {
			errs = append(errs, fmt.Errorf("cores[%d]: name is required", i))
		}
		if len(def.Extensions) == 0 {
			errs = append(errs, fmt.Errorf("cores[%d] %s: no extensions", i, def.Name))
		}
	}
	return errors.Join(errs...)
}

var errNotDirectory = errors.New("not a directory")
