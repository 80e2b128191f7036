// Command esm2json decodes a .DDD file and writes its decoded record tree
// as JSON.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tachograph "github.com/fleetcodec/tachograph-go"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "esm2json:", err)
		os.Exit(1)
	}
}

func run() error {
	dddFile := flag.String("ddd-file", "", "path to the input .DDD file (required)")
	jsonFile := flag.String("json-file", "", "path to the output .json file (default: ddd-file with .json extension)")
	flag.Parse()

	if *dddFile == "" {
		return fmt.Errorf("--ddd-file is required")
	}
	out := *jsonFile
	if out == "" {
		out = defaultOutputPath(*dddFile, ".json")
	}

	data, err := tachograph.ParseFile(*dddFile)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", *dddFile, err)
	}
	doc, err := tachograph.SerializeJSON(data)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", *dddFile, err)
	}
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	return nil
}

func defaultOutputPath(in, ext string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ext
}
