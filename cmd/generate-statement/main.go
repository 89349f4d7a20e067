package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"investorhub/investor-portal/docgen/internal/config"
	"investorhub/investor-portal/docgen/internal/jsonutil"
	"investorhub/investor-portal/docgen/internal/statements"
)

type result struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Reads a statement payload from argv[1] and writes the rendered statement
// to argv[2] (PDF by default; .xlsx and .csv follow the extension). An
// optional argv[3] loads a theme config. Unlike the agreement generator,
// success and failure are reported as JSON on stdout.
func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: generate-statement <input_json_path> <output_path> [theme_config]")
		os.Exit(1)
	}
	inputPath, outputPath := os.Args[1], os.Args[2]

	theme := config.DefaultTheme()
	if len(os.Args) > 3 {
		t, err := config.LoadTheme(os.Args[3])
		if err != nil {
			emit(result{Success: false, Error: err.Error()})
		}
		theme = t
	}

	var in statements.StatementInput
	if err := jsonutil.ReadFile(inputPath, &in); err != nil {
		msg := err.Error()
		if errors.Is(err, jsonutil.ErrNotFound) {
			msg = fmt.Sprintf("Input file not found: %s", inputPath)
		}
		emit(result{Success: false, Error: msg})
	}

	path, err := statements.Render(in, theme, outputPath)
	if err != nil {
		emit(result{Success: false, Error: err.Error()})
	}
	emit(result{Success: true, Path: path})
}

// emit prints the JSON result and exits, non-zero on failure.
func emit(r result) {
	out, err := json.Marshal(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(out))
	if !r.Success {
		os.Exit(1)
	}
	os.Exit(0)
}
