package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"association-reports/internal/core"
)

// reportgen renders a report from a JSON data file using the built-in default
// template. Intended for local inspection of generated documents without a
// running backend.
func main() {
	if len(os.Args) < 3 {
		usage()
	}

	dataPath := os.Args[2]
	outPath := ""
	if len(os.Args) > 3 {
		outPath = os.Args[3]
	}

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		log.Fatalf("Failed to read data file: %v", err)
	}

	var pdf []byte
	var name string
	switch os.Args[1] {
	case "statement", "stmt", "s":
		var data core.TeacherStatementData
		if err := json.Unmarshal(raw, &data); err != nil {
			log.Fatalf("Invalid statement JSON: %v", err)
		}
		pdf, err = core.BuildTeacherStatement(data, core.DefaultStatementTemplate())
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		name = core.StatementFileName(data)

	case "summary", "sum":
		var data core.AssociationSummaryData
		if err := json.Unmarshal(raw, &data); err != nil {
			log.Fatalf("Invalid summary JSON: %v", err)
		}
		pdf, err = core.BuildAssociationSummary(data, core.DefaultAssociationTemplate())
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		name = core.SummaryFileName(data)

	default:
		usage()
	}

	if outPath == "" {
		outPath = name
	}
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", outPath, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(pdf))
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: reportgen statement|summary <data.json> [out.pdf]")
	os.Exit(1)
}
