// Package convert handles the CSV to OFX conversion command
package convert

import (
	"fjacquet/fid2ofx/cmd/root"
	"fjacquet/fid2ofx/internal/converter"
	"fjacquet/fid2ofx/internal/logging"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var lastBalance string

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a CSV export to an OFX statement file",
	Long: `Convert a bank CSV export to an OFX statement file. The last known
account balance feeds the statement's ledger and available balance blocks,
since the export itself carries no running balance.`,
	Run: convertFunc,
}

func init() {
	Cmd.Flags().StringVarP(&lastBalance, "last-balance", "b", "", "Account balance at last operation")
	_ = Cmd.MarkFlagRequired("last-balance")
}

func convertFunc(cmd *cobra.Command, args []string) {
	if root.CSVFile == "" {
		root.Log.Fatal("CSV file path is missing")
	}

	balance, err := decimal.NewFromString(lastBalance)
	if err != nil {
		root.Log.Fatalf("Invalid last balance %q: %v", lastBalance, err)
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	outputPath, err := converter.Convert(root.CSVFile, root.Output, balance, root.Cfg, logger)
	if err != nil {
		root.Log.Fatalf("Error converting CSV file: %v", err)
	}
	root.Log.Infof("File %s wrote successfully.", outputPath)
}
