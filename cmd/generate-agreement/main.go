package main

import (
	"errors"
	"fmt"
	"os"

	"investorhub/investor-portal/docgen/internal/agreements"
	"investorhub/investor-portal/docgen/internal/config"
	"investorhub/investor-portal/docgen/internal/jsonutil"
)

// Reads an agreement payload from argv[1] and writes the signed agreement
// PDF to argv[2]. Reports human-readable text on stdout; the statement
// generator is the JSON-speaking sibling.
func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: generate-agreement <input_json_path> <output_path>")
		os.Exit(1)
	}
	inputPath, outputPath := os.Args[1], os.Args[2]

	var in agreements.AgreementInput
	if err := jsonutil.ReadFile(inputPath, &in); err != nil {
		switch {
		case errors.Is(err, jsonutil.ErrNotFound):
			fmt.Printf("Input file not found: %s\n", inputPath)
		case errors.Is(err, jsonutil.ErrInvalidJSON):
			fmt.Printf("JSON parse error: %v\n", err)
		default:
			fmt.Printf("Error: %v\n", err)
		}
		os.Exit(1)
	}

	if err := agreements.Render(in, config.DefaultTheme(), outputPath); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Signed agreement generated: %s\n", outputPath)
}
