package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/reco/reco-builder/internal/export"
	"github.com/reco/reco-builder/internal/observability"
	"github.com/reco/reco-builder/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a document file to PDF",
	Long:  "Renders a resume or cover letter JSON file through the HTML pipeline and writes the paginated PDF, without starting the server.",
	RunE:  runExport,
}

var (
	exportInputFile  string
	exportKind       string
	exportTemplateID string
	exportOutputFile string
	exportChromePath string
	exportTimeout    int
	exportVerbose    bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "input", "i", "", "Path to the document JSON file (required)")
	exportCmd.Flags().StringVarP(&exportKind, "kind", "k", "resume", "Document kind: resume or cover-letter")
	exportCmd.Flags().StringVarP(&exportTemplateID, "template", "t", "", "Template id (defaults to the document's template)")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Output path (defaults to the generated filename)")
	exportCmd.Flags().StringVar(&exportChromePath, "chrome", "", "Chrome/Chromium binary for PDF capture (overrides CHROME_PATH)")
	exportCmd.Flags().IntVar(&exportTimeout, "timeout", 60, "Capture timeout in seconds")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print document and export summaries")

	_ = exportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(exportInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	chromePath := exportChromePath
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	rasterizer := export.NewRasterizer(chromePath, time.Duration(exportTimeout)*time.Second)
	exporter := export.NewExporter(rasterizer)
	printer := observability.NewPrinter(os.Stdout)

	ctx := context.Background()

	var result *export.Result
	switch exportKind {
	case "resume":
		doc := types.EmptyResume()
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("failed to parse resume JSON: %w", err)
		}
		doc.Normalize()

		templateID := exportTemplateID
		if templateID == "" || !types.ValidResumeTemplate(templateID) {
			templateID = types.ResumeTemplateDefault
		}

		if exportVerbose {
			printer.PrintResume(doc, templateID)
		}

		result, err = exporter.Resume(ctx, doc, templateID)
		if err != nil {
			return err
		}

	case "cover-letter":
		doc := types.EmptyCoverLetter()
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("failed to parse cover letter JSON: %w", err)
		}
		doc.Normalize()
		if exportTemplateID != "" {
			doc.Template = exportTemplateID
		}

		if exportVerbose {
			printer.PrintCoverLetter(doc)
		}

		result, err = exporter.CoverLetter(ctx, doc)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown kind %q: must be resume or cover-letter", exportKind)
	}

	outPath := exportOutputFile
	if outPath == "" {
		outPath = result.Filename()
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := result.WriteToFile(outPath); err != nil {
		return err
	}

	if exportVerbose {
		printer.PrintExportResult(result, outPath)
	} else {
		fmt.Printf("Wrote %s (%d bytes)\n", outPath, result.Len())
	}
	return nil
}
