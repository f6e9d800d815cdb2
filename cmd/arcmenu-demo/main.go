// Command arcmenu-demo shows a configurable arc menu in an SDL window or,
// with -term, in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/messages"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/sdlhost"
	"github.com/BrandonKowalski/arcmenu/pkg/arcmenu/termhost"
)

func main() {
	var (
		configPath = flag.String("config", "", "menu config (TOML); empty uses the built-in menu")
		term       = flag.Bool("term", false, "run in the terminal instead of an SDL window")
		termRadius = flag.Float64("term-radius", 16, "arc radius in columns for -term")
		locale     = flag.String("locale", "", "toast language; overrides the config")
		logPath    = flag.String("log", "", "log file path")
		logLevel   = flag.String("log-level", "info", "application log level")
		cannoli    = flag.Bool("cannoli", false, "use the Cannoli theme and menu button")
	)
	flag.Parse()

	if *term {
		termhost.SetLogPath(*logPath)
		termhost.SetRawLogLevel(*logLevel)
	} else {
		sdlhost.SetLogPath(*logPath)
		sdlhost.SetRawLogLevel(*logLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if *term {
		err = runTerminal(ctx, *configPath, *locale, *termRadius)
	} else {
		err = runWindow(ctx, *configPath, *locale, *cannoli)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "arcmenu-demo: %v\n", err)
		os.Exit(1)
	}
}

func load(path, locale string) (*arcmenu.Config, *messages.Catalog, error) {
	cfg, err := arcmenu.LoadConfig(path)
	if err != nil {
		return nil, nil, err
	}
	if locale == "" {
		locale = cfg.Locale
	}
	catalog, err := messages.New(locale)
	if err != nil {
		return nil, nil, err
	}
	return cfg, catalog, nil
}

func logSelection(logger *slog.Logger) func(e *arcmenu.Element, position int) {
	return func(e *arcmenu.Element, position int) {
		logger.Info("Item selected", "position", position, "label", e.Label, "tag", e.Tag)
	}
}

func runWindow(ctx context.Context, path, locale string, cannoli bool) error {
	cfg, catalog, err := load(path, locale)
	if err != nil {
		return err
	}

	err = sdlhost.Init(sdlhost.Options{
		WindowTitle:    "Arc Menu",
		WindowOptions:  sdlhost.WindowOptions{Resizable: true, HighDPI: true},
		Theme:          cfg.Theme,
		IsCannoli:      cannoli,
		HardwareButton: cfg.Hardware,
		Density:        cfg.Density,
	})
	if err != nil {
		return err
	}
	defer sdlhost.Close()

	menu, err := cfg.Build()
	if err != nil {
		return err
	}
	host, err := sdlhost.NewHost(menu, catalog)
	if err != nil {
		return err
	}

	logger := sdlhost.GetLogger()
	logger.Info("Starting arc menu", "items", catalog.Items(len(menu.Items())), "language", catalog.Language().String())
	host.OnItemSelected(logSelection(logger))
	return host.Run(ctx)
}

// runTerminal lays the arc out in cells, so the config's pixel radius and
// item sizes are replaced by radius columns and label widths.
func runTerminal(ctx context.Context, path, locale string, radius float64) error {
	cfg, catalog, err := load(path, locale)
	if err != nil {
		return err
	}
	cfg.Radius = radius
	cfg.Density = 1

	menu, err := cfg.Build()
	if err != nil {
		return err
	}

	screen, err := termhost.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()
	defer termhost.Close()

	host, err := termhost.NewHost(menu, screen, catalog)
	if err != nil {
		return err
	}

	logger := termhost.GetLogger()
	logger.Info("Starting arc menu", "items", catalog.Items(len(menu.Items())), "language", catalog.Language().String())
	host.OnItemSelected(logSelection(logger))
	return host.Run(ctx)
}
