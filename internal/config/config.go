package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/atomicstack/learnaz/internal/app"
	"github.com/atomicstack/learnaz/internal/catalog"
	"github.com/atomicstack/learnaz/internal/store"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
	Print   bool
}

const (
	envWidth      = "LEARNAZ_WIDTH"
	envHeight     = "LEARNAZ_HEIGHT"
	envShowFooter = "LEARNAZ_FOOTER"
	envVerbose    = "LEARNAZ_VERBOSE"
	envTrace      = "LEARNAZ_TRACE"
	envLogFile    = "LEARNAZ_LOG_FILE"
	envCatalog    = "LEARNAZ_CATALOG"
	envWatch      = "LEARNAZ_WATCH"
	envStore      = "LEARNAZ_STORE"
	envDataDir    = "LEARNAZ_DATA_DIR"
	envAssetsDir  = "LEARNAZ_ASSETS_DIR"
	envQuery      = "LEARNAZ_QUERY"
	envTag        = "LEARNAZ_TAG"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("learnaz", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a .yaml, .yml, .json or .jsonc catalog (built-in feed when empty)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, false), "reload the catalog when the file changes")
	storeKind := fs.String("store", envOrDefault(env, envStore, string(store.KindDisk)), "local storage backend: disk, sqlite or memory")
	dataDir := fs.String("data-dir", envOrDefault(env, envDataDir, store.DefaultDir), "directory for local storage")
	assetsDir := fs.String("assets-dir", envOrDefault(env, envAssetsDir, ""), "directory image references resolve against")
	query := fs.String("query", envOrDefault(env, envQuery, ""), "initial search query")
	tag := fs.String("tag", envOrDefault(env, envTag, ""), "initial tag filter")
	printFeed := fs.BoolP("print", "p", false, "print the filtered feed as a table and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
			CatalogPath: *catalogPath,
			Watch:       *watch,
			StoreKind:   *storeKind,
			DataDir:     *dataDir,
			AssetsDir:   *assetsDir,
			Query:       *query,
			Tag:         *tag,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
			Print:   *printFeed,
		},
		Flags: map[string]string{
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"verbose":   strconv.FormatBool(*verbose),
			"logFile":   *logFile,
			"catalog":   *catalogPath,
			"watch":     strconv.FormatBool(*watch),
			"store":     *storeKind,
			"dataDir":   *dataDir,
			"assetsDir": *assetsDir,
			"query":     *query,
			"tag":       *tag,
			"print":     strconv.FormatBool(*printFeed),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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

// Validate rejects unknown store backends and catalog files in an
// unsupported format. Watching requires a catalog file.
func Validate(cfg Config) error {
	if _, err := store.ParseKind(cfg.App.StoreKind); err != nil {
		return err
	}
	if path := cfg.App.CatalogPath; path != "" && !catalog.SupportedExtension(path) {
		return fmt.Errorf("%w: %s", catalog.ErrUnsupportedFormat, path)
	}
	if cfg.App.Watch && cfg.App.CatalogPath == "" {
		return errors.New("--watch requires --catalog")
	}
	return nil
}
