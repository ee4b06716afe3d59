package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	htmlify "github.com/alnah/go-htmlify"
	"github.com/alnah/go-htmlify/internal/assets"
	"github.com/alnah/go-htmlify/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoLayout       = errors.New("no layout specified")
	ErrReadLayout     = errors.New("failed to read layout file")
	ErrReadIndex      = errors.New("failed to read index template")
	ErrReadStructured = errors.New("failed to read structured data file")
	ErrWriteOutput    = errors.New("failed to write output file")
)

// filePermissions is the mode for generated snapshots.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// titleMarker marks where the page title goes in the index template.
const titleMarker = "{%title%}"

// run orchestrates the snapshot: load config, decode the layout, render
// it, splice structured data, and write the assembled page.
func run(args []string, stdout io.Writer) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(stdout, "htmlify %s\n", Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins).
	mergeFlags(flags, cfg, positional)

	if cfg.Input.Layout == "" {
		return ErrNoLayout
	}

	layout, err := loadLayout(cfg.Input.Layout)
	if err != nil {
		return err
	}

	index, err := loadIndex(cfg.Input.Index, cfg.Snapshot.Title)
	if err != nil {
		return err
	}

	structured, err := loadStructured(cfg.Input.JSONLD)
	if err != nil {
		return err
	}

	svc := htmlify.New(serviceOptions(cfg)...)
	app := &htmlify.App{Layout: layout, IndexString: index}

	if err := svc.Htmlify(context.Background(), app, structured); err != nil {
		return err
	}

	return writeOutput(cfg.Output.File, app.Page(), stdout, flags.verbose)
}

// mergeFlags applies CLI flags over config values. A lone positional
// argument is the layout path when --layout is absent.
func mergeFlags(flags *snapshotFlags, cfg *config.Config, positional []string) {
	if flags.layout != "" {
		cfg.Input.Layout = flags.layout
	} else if cfg.Input.Layout == "" && len(positional) > 0 {
		cfg.Input.Layout = positional[0]
	}
	if flags.index != "" {
		cfg.Input.Index = flags.index
	}
	if flags.jsonld != "" {
		cfg.Input.JSONLD = flags.jsonld
	}
	if flags.output != "" {
		cfg.Output.File = flags.output
	}
	if flags.title != "" {
		cfg.Snapshot.Title = flags.title
	}
}

// serviceOptions translates config values into service options.
func serviceOptions(cfg *config.Config) []htmlify.Option {
	var opts []htmlify.Option
	if cfg.Snapshot.ClassPrefix != "" {
		opts = append(opts, htmlify.WithClassPrefix(cfg.Snapshot.ClassPrefix))
	}
	if cfg.Snapshot.DefaultHeight != "" {
		opts = append(opts, htmlify.WithDefaultHeight(cfg.Snapshot.DefaultHeight))
	}
	if cfg.Snapshot.LargeHeight != "" {
		opts = append(opts, htmlify.WithLargeHeight(cfg.Snapshot.LargeHeight))
	}
	if len(cfg.Snapshot.LargeComponents) > 0 {
		opts = append(opts, htmlify.WithLargeComponents(cfg.Snapshot.LargeComponents...))
	}
	return opts
}

// loadLayout reads and decodes a layout YAML file into a node tree.
func loadLayout(path string) (*htmlify.Node, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- layout path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadLayout, err)
	}
	return decodeLayout(data)
}

// loadIndex returns the index template with the title substituted.
// An empty path selects the embedded default template.
func loadIndex(path, title string) (string, error) {
	index := assets.DefaultIndex()
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- index path is user-provided
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadIndex, err)
		}
		index = string(data)
	}
	return strings.ReplaceAll(index, titleMarker, title), nil
}

// loadStructured reads the structured data file. A .json file is
// decoded into a map for JSON-LD injection; any other file is spliced
// into the head verbatim. An empty path means no structured data.
func loadStructured(path string) (any, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- data path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadStructured, err)
	}
	if filepath.Ext(path) != ".json" {
		return string(data), nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadStructured, err)
	}
	return m, nil
}

// writeOutput writes the page to the output file, or stdout when no
// file is configured.
func writeOutput(path, page string, stdout io.Writer, verbose bool) error {
	if path == "" {
		_, err := io.WriteString(stdout, page)
		return err
	}
	if err := os.WriteFile(path, []byte(page), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", path, len(page))
	}
	return nil
}
