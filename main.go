package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/learnaz/internal/app"
	"github.com/atomicstack/learnaz/internal/config"
	"github.com/atomicstack/learnaz/internal/logging"
	"github.com/atomicstack/learnaz/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := run(runtimeCfg); err != nil {
		logging.Error(err)
		logging.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Sync()
}

func run(cfg config.Config) error {
	if cfg.Features.Print {
		return app.Print(os.Stdout, cfg.App)
	}
	return app.Run(cfg.App)
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload describes what the run will show and where it draws.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+3)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	flags["print"] = cfg.Features.Print

	return map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"mode":     runMode(cfg),
		"feed":     feedContext(cfg.App),
		"process":  processContext(),
		"terminal": inspectTerminal(),
	}
}

func runMode(cfg config.Config) string {
	if cfg.Features.Print {
		return "print"
	}
	return "tui"
}

// feedContext names the catalog, store and filter the first frame is built from.
func feedContext(cfg app.Config) map[string]interface{} {
	source := cfg.CatalogPath
	if source == "" {
		source = "builtin"
	}
	filter := cfg.Filter()
	tag := filter.Tag
	if tag == "" {
		tag = "all"
	}
	return map[string]interface{}{
		"catalog": source,
		"watch":   cfg.Watch,
		"store":   cfg.StoreKind,
		"dataDir": cfg.DataDir,
		"assets":  cfg.AssetsDir,
		"query":   filter.Query,
		"tag":     tag,
	}
}

func processContext() map[string]string {
	ctx := make(map[string]string, 2)
	if exe, err := os.Executable(); err == nil {
		ctx["executable"] = exe
	} else {
		ctx["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		ctx["cwd"] = cwd
	} else {
		ctx["cwdError"] = err.Error()
	}
	return ctx
}

// terminalInfo records which standard streams are terminals. Size is the
// first terminal size found; the feed is laid out against it unless
// --width/--height override.
type terminalInfo struct {
	Size    *terminalSize   `json:"size,omitempty"`
	Streams []streamSummary `json:"streams"`
}

type terminalSize struct {
	From   string `json:"from"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type streamSummary struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Err      string `json:"err,omitempty"`
}

func inspectTerminal() terminalInfo {
	streams := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	info := terminalInfo{Streams: make([]streamSummary, len(streams))}
	for i, f := range streams {
		s := streamSummary{Name: names[i]}
		if f != nil {
			s = describeStream(names[i], int(f.Fd()))
		}
		if s.Terminal && s.Err == "" && info.Size == nil {
			info.Size = &terminalSize{From: s.Name, Width: s.Width, Height: s.Height}
		}
		info.Streams[i] = s
	}
	return info
}

func describeStream(name string, fd int) streamSummary {
	s := streamSummary{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return s
	}
	s.Terminal = true
	w, h, err := term.GetSize(fd)
	if err != nil {
		s.Err = err.Error()
		return s
	}
	s.Width, s.Height = w, h
	return s
}
