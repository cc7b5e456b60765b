// Package config parses command-line arguments for the take tool.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/take/internal/exit"
)

var (
	ErrNoArguments   = errors.New("no arguments provided")
	ErrNoRulesFile   = errors.New("no rules file specified")
	ErrEmptyPipeline = errors.New("pipeline name cannot be empty")
)

// Config represents the complete configuration for the take tool.
type Config struct {
	RulesFile string
	InputFile string   // empty or "-" means stdin
	Path      string   // optional JSONPath selector applied to JSON input
	Pipelines []string // run only the named pipelines; empty runs all
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.RulesFile == "" {
		return ErrNoRulesFile
	}

	if _, err := os.Stat(c.RulesFile); err != nil {
		return fmt.Errorf("rules file %s not found: %w", c.RulesFile, err)
	}

	if c.InputFile != "" && c.InputFile != "-" {
		if _, err := os.Stat(c.InputFile); err != nil {
			return fmt.Errorf("input file %s not found: %w", c.InputFile, err)
		}
	}

	return nil
}

// RunsPipeline reports whether the named pipeline is selected.
func (c *Config) RunsPipeline(name string) bool {
	if len(c.Pipelines) == 0 {
		return true
	}
	for _, selected := range c.Pipelines {
		if selected == name {
			return true
		}
	}
	return false
}

// pipelinesFlag implements flag.Value for parsing multiple -pipeline flags.
type pipelinesFlag []string

// String returns a string representation of the pipelines flag for flag.Value interface.
func (p *pipelinesFlag) String() string {
	return strings.Join(*p, ",")
}

// Set stores a pipeline name for flag.Value interface.
func (p *pipelinesFlag) Set(value string) error {
	name := strings.TrimSpace(value)
	if name == "" {
		return ErrEmptyPipeline
	}
	*p = append(*p, name)
	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	var (
		rulesFile = fs.String("rules", "", "Path to YAML rules file defining extraction pipelines")
		inputFile = fs.String("input", "", "Path to input file (empty or - for stdin)")
		path      = fs.String("path", "", "JSONPath selector applied to JSON input before parsing")
		pipelines pipelinesFlag
	)

	fs.Var(&pipelines, "pipeline", "Pipeline name to run (can be used multiple times, default all)")

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	// A single positional argument is an alternative way to name the rules file.
	positional := fs.Args()
	switch {
	case len(positional) == 1 && *rulesFile == "":
		*rulesFile = positional[0]
	case len(positional) > 0:
		return nil, exit.Errorf("Error: unexpected arguments: %s\n\n%s", strings.Join(positional, " "), Usage())
	}

	config := &Config{
		RulesFile: *rulesFile,
		InputFile: *inputFile,
		Path:      *path,
		Pipelines: pipelines,
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `take - declarative text extraction tool

Usage: take -rules <rules.yaml> [options]

Options:
  --rules FILE       Path to YAML rules file defining extraction pipelines
  --input FILE       Path to input file (empty or - for stdin)
  --path EXPR        JSONPath selector applied to JSON input before parsing
  --pipeline NAME    Pipeline name to run (can be used multiple times, default all)
  -h, --help         Show this help message

Examples:
  take -rules rules.yaml -input data.txt       # Run every pipeline against a file
  cat data.txt | take -rules rules.yaml        # Read input from stdin
  take -rules rules.yaml -pipeline number      # Run a single pipeline
  take -rules rules.yaml -input body.json -path '$.message.text'`
}
