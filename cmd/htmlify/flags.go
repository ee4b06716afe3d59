package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// snapshotFlags holds all flags for the snapshot command.
type snapshotFlags struct {
	layout  string
	index   string
	jsonld  string
	output  string
	title   string
	config  string
	verbose bool
	version bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*snapshotFlags, []string, error) {
	fs := flag.NewFlagSet("htmlify", flag.ContinueOnError)
	f := &snapshotFlags{}

	fs.StringVarP(&f.layout, "layout", "l", "", "layout YAML file describing the component tree")
	fs.StringVarP(&f.index, "index", "i", "", "index page template (default: embedded template)")
	fs.StringVarP(&f.jsonld, "jsonld", "j", "", "structured data file (.json = JSON-LD map, other = raw head block)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVar(&f.title, "title", "", "page title for the index template")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show processing details")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the command usage to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: htmlify [flags] [layout.yaml]

Render a component layout into a static HTML snapshot.

Flags:
  -l, --layout string   layout YAML file describing the component tree
  -i, --index string    index page template (default: embedded template)
  -j, --jsonld string   structured data file (.json = JSON-LD map, other = raw head block)
  -o, --output string   output file (default: stdout)
      --title string    page title for the index template
  -c, --config string   config file name or path
  -v, --verbose         show processing details
      --version         print version and exit
`)
}
