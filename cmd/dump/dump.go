// Package dump handles the parsed-record CSV dump command
package dump

import (
	"strings"

	"fjacquet/fid2ofx/cmd/root"
	"fjacquet/fid2ofx/internal/converter"
	"fjacquet/fid2ofx/internal/logging"
	"fjacquet/fid2ofx/internal/records"

	"github.com/spf13/cobra"
)

// Cmd represents the dump command
var Cmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the parsed transaction records as CSV",
	Long: `Parse a bank CSV export through the same pipeline as convert and dump
the normalized records as a comma-separated file. Useful to inspect what the
converter extracted from a problematic export.`,
	Run: dumpFunc,
}

func dumpFunc(cmd *cobra.Command, args []string) {
	if root.CSVFile == "" {
		root.Log.Fatal("CSV file path is missing")
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	parsed, err := converter.ParseFile(root.CSVFile, root.Cfg, logger)
	if err != nil {
		root.Log.Fatalf("Error parsing CSV file: %v", err)
	}

	outputPath := root.Output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(root.CSVFile, ".csv") + "_records.csv"
	}
	if err := records.WriteCSV(parsed, outputPath); err != nil {
		root.Log.Fatalf("Error writing records CSV: %v", err)
	}
	root.Log.Infof("File %s wrote successfully.", outputPath)
}
