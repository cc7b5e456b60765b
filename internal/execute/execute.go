// Package execute runs rules pipelines against the configured input
// and renders the run report.
package execute

import (
	"io"
	"os"
	"strings"

	"github.com/jacoelho/take"
	"github.com/jacoelho/take/internal/config"
	"github.com/jacoelho/take/internal/exit"
	"github.com/jacoelho/take/internal/report"
	"github.com/jacoelho/take/internal/rules"
	"github.com/jacoelho/take/internal/source"
)

// Run loads the rules file and input, applies the selected pipelines
// and returns the rendered report as an exit result.
func Run(cfg *config.Config, stdin io.Reader) *exit.Result {
	rulesFile, err := os.Open(cfg.RulesFile)
	if err != nil {
		return exit.Errorf("Error: failed to open rules file: %v\n", err)
	}
	defer rulesFile.Close()

	doc, err := rules.Parse(rulesFile)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	input, err := source.Read(cfg.InputFile, stdin)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	if cfg.Path != "" {
		input, err = source.Select(input, cfg.Path)
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
	}

	run := report.New()
	elements := take.Runes(input)

	for _, pipeline := range doc.Pipelines {
		if !cfg.RunsPipeline(pipeline.Name) {
			continue
		}

		parser, err := pipeline.Compile()
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}

		rest, taken, err := parser(elements)
		if err != nil {
			run.Add(report.PipelineResult{Name: pipeline.Name, Err: err})
			continue
		}
		run.Add(report.PipelineResult{
			Name:  pipeline.Name,
			Taken: renderTaken(taken),
			Rest:  string(rest),
		})
	}

	var sb strings.Builder
	if err := run.FormatText(&sb); err != nil {
		return exit.Errorf("Error: failed to render report: %v\n", err)
	}

	if run.Failed > 0 {
		return exit.Failure(sb.String())
	}
	return exit.Success(sb.String())
}

// renderTaken flattens combinator results into the concatenation of
// their parts so the report shows plain text.
func renderTaken(taken any) string {
	if parts, ok := taken.([]any); ok {
		var sb strings.Builder
		for _, part := range parts {
			sb.WriteString(renderTaken(part))
		}
		return sb.String()
	}
	return take.Str(taken)
}
