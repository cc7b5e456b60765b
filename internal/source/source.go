// Package source loads the input text a run operates on.
package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/theory/jsonpath"
)

// ErrSource is the sentinel error for all input loading failures.
var ErrSource = fmt.Errorf("source error")

// Read returns the input text. An empty path or "-" reads stdin.
func Read(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: failed to read stdin: %v", ErrSource, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read %s: %v", ErrSource, path, err)
	}
	return string(data), nil
}

// Select treats document as JSON and returns the first value matching
// the JSONPath expression, converted to a string when it is not one.
func Select(document string, pathExpr string) (string, error) {
	if pathExpr == "" {
		return "", fmt.Errorf("%w: JSONPath expression is empty", ErrSource)
	}

	var data any
	if err := json.Unmarshal([]byte(document), &data); err != nil {
		return "", fmt.Errorf("%w: failed to parse JSON input: %v", ErrSource, err)
	}

	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return "", fmt.Errorf("%w: invalid JSONPath %s: %v", ErrSource, pathExpr, err)
	}

	results := path.Select(data)
	if len(results) == 0 {
		return "", fmt.Errorf("%w: JSONPath %s matched nothing", ErrSource, pathExpr)
	}

	if str, ok := results[0].(string); ok {
		return str, nil
	}
	return fmt.Sprintf("%v", results[0]), nil
}
