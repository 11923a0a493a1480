// Package main prints every action identifier of the configured catalog.
//
//	actions -format text
//	actions -profile prod -format json
//
// It loads the same configuration and catalog source as the server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samber/do/v2"

	"github.com/CodeJamboree/action-builder/internal/adapters/http/dto"
	"github.com/CodeJamboree/action-builder/internal/bootstrap"
	"github.com/CodeJamboree/action-builder/internal/domain/catalog"
	"github.com/CodeJamboree/action-builder/internal/platform/config"
	"github.com/CodeJamboree/action-builder/internal/platform/logging"
	"github.com/CodeJamboree/action-builder/internal/ports"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("actions", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		format    = fs.String("format", formatText, "output format: text or json")
		profile   = fs.String("profile", config.Profile(), "configuration profile")
		configDir = fs.String("config", "configs", "directory holding base.yaml and profile files")
		verbose   = fs.Bool("v", false, "log catalog loading to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *format != formatText && *format != formatJSON {
		fmt.Fprintf(stderr, "unknown format %q\n", *format)
		fs.Usage()
		return errUsage
	}

	cfg, err := config.Load(*profile, config.WithConfigDir(*configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.DiscardHandler)
	if *verbose {
		logger = logging.New(cfg.Log.Level, cfg.Log.Format, stderr)
	}

	injector := do.New()
	bootstrap.Register(injector, cfg, logger, nil)

	svc, err := do.Invoke[ports.CatalogService](injector)
	if err != nil {
		return fmt.Errorf("resolving catalog service: %w", err)
	}
	if err := svc.Reload(ctx); err != nil {
		return err
	}

	cat, err := svc.Catalog(ctx)
	if err != nil {
		return err
	}

	if *format == formatJSON {
		return writeJSON(stdout, cat)
	}
	return writeText(stdout, cat)
}

func writeText(w io.Writer, cat *catalog.Catalog) error {
	for _, e := range cat.Entries() {
		if _, err := fmt.Fprintln(w, e.Type); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, cat *catalog.Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(dto.ToCatalogResponse(cat))
}
