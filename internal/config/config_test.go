package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	t.Parallel()

	rulesFile := writeTempFile(t, "rules.yaml", "pipelines: []")
	inputFile := writeTempFile(t, "input.txt", "some input")

	tests := []struct {
		name     string
		args     []string
		want     *Config
		wantExit int
	}{
		{
			name: "rules_flag_only",
			args: []string{"take", "-rules", rulesFile},
			want: &Config{RulesFile: rulesFile},
		},
		{
			name: "rules_as_positional",
			args: []string{"take", rulesFile},
			want: &Config{RulesFile: rulesFile},
		},
		{
			name: "all_flags",
			args: []string{"take", "-rules", rulesFile, "-input", inputFile, "-path", "$.message.text", "-pipeline", "a", "-pipeline", "b"},
			want: &Config{
				RulesFile: rulesFile,
				InputFile: inputFile,
				Path:      "$.message.text",
				Pipelines: []string{"a", "b"},
			},
		},
		{
			name: "stdin_input",
			args: []string{"take", "-rules", rulesFile, "-input", "-"},
			want: &Config{RulesFile: rulesFile, InputFile: "-"},
		},
		{
			name:     "no_args",
			args:     nil,
			wantExit: 2,
		},
		{
			name:     "missing_rules",
			args:     []string{"take"},
			wantExit: 2,
		},
		{
			name:     "rules_file_not_found",
			args:     []string{"take", "-rules", "does-not-exist.yaml"},
			wantExit: 2,
		},
		{
			name:     "input_file_not_found",
			args:     []string{"take", "-rules", rulesFile, "-input", "does-not-exist.txt"},
			wantExit: 2,
		},
		{
			name:     "unexpected_positional",
			args:     []string{"take", "-rules", rulesFile, "extra"},
			wantExit: 2,
		},
		{
			name:     "unknown_flag",
			args:     []string{"take", "-rules", rulesFile, "-bogus"},
			wantExit: 2,
		},
		{
			name:     "help_exits_zero",
			args:     []string{"take", "-h"},
			wantExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, exitResult := Parse(tt.args)
			if tt.want == nil {
				if exitResult == nil {
					t.Fatalf("Parse(%v) succeeded, want exit result", tt.args)
				}
				if exitResult.ExitCode != tt.wantExit {
					t.Errorf("ExitCode = %d, want %d", exitResult.ExitCode, tt.wantExit)
				}
				return
			}
			if exitResult != nil {
				t.Fatalf("Parse(%v) failed: %s", tt.args, exitResult.Message)
			}
			if !reflect.DeepEqual(cfg, tt.want) {
				t.Errorf("Config = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestParseEmptyPipelineName(t *testing.T) {
	t.Parallel()

	rulesFile := writeTempFile(t, "rules.yaml", "pipelines: []")

	_, exitResult := Parse([]string{"take", "-rules", rulesFile, "-pipeline", "  "})
	if exitResult == nil {
		t.Fatal("Parse() succeeded, want exit result")
	}
	if !strings.Contains(exitResult.Message, ErrEmptyPipeline.Error()) {
		t.Errorf("Message = %q, want mention of %q", exitResult.Message, ErrEmptyPipeline)
	}
}

func TestRunsPipeline(t *testing.T) {
	t.Parallel()

	all := &Config{}
	if !all.RunsPipeline("anything") {
		t.Error("empty selection should run every pipeline")
	}

	some := &Config{Pipelines: []string{"a", "b"}}
	if !some.RunsPipeline("a") || !some.RunsPipeline("b") {
		t.Error("selected pipelines should run")
	}
	if some.RunsPipeline("c") {
		t.Error("unselected pipeline should not run")
	}
}
