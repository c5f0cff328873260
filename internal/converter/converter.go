// Package converter wires the full CSV to OFX pipeline: read and decode the
// export, normalize it, build the sorted record set, assemble the OFX
// document and write it out.
package converter

import (
	"fmt"

	"fjacquet/fid2ofx/internal/config"
	"fjacquet/fid2ofx/internal/csvutils"
	"fjacquet/fid2ofx/internal/fileutils"
	"fjacquet/fid2ofx/internal/logging"
	"fjacquet/fid2ofx/internal/models"
	"fjacquet/fid2ofx/internal/ofx"
	"fjacquet/fid2ofx/internal/parsererror"
	"fjacquet/fid2ofx/internal/records"

	"github.com/shopspring/decimal"
)

// ParseFile reads, normalizes, decodes and builds the sorted record set
// from one export file.
func ParseFile(inputPath string, cfg *config.Config, logger logging.Logger) ([]models.Record, error) {
	if !fileutils.FileExists(inputPath) {
		return nil, fmt.Errorf("the file %q does not exist", inputPath)
	}

	text, err := fileutils.ReadTextFile(inputPath, cfg.CSV.Encoding)
	if err != nil {
		return nil, err
	}

	normalized := csvutils.Normalize(text, cfg.CSV.Delimiter, cfg.CSV.LineBreak)
	rows, err := csvutils.DecodeRows(normalized, cfg.CSV.Delimiter)
	if err != nil {
		return nil, err
	}
	logger.Debug("Decoded CSV rows", logging.Field{Key: "count", Value: len(rows)})

	result, err := records.BuildAll(rows)
	if err != nil {
		return nil, err
	}
	logger.Info("Built transaction records", logging.Field{Key: "count", Value: len(result)})

	return result, nil
}

// Convert runs the whole pipeline for one export file and returns the path
// of the written OFX file. Nothing is written unless every stage succeeded:
// the statement's date range and balances depend on the complete record set.
// An empty outputPath derives the name from the input file's base name.
func Convert(inputPath, outputPath string, lastBalance decimal.Decimal, cfg *config.Config, logger logging.Logger) (string, error) {
	if lastBalance.IsZero() {
		return "", &parsererror.ValidationError{Reason: "last balance can't be at zero"}
	}

	result, err := ParseFile(inputPath, cfg, logger)
	if err != nil {
		return "", err
	}

	root, err := ofx.BuildStatement(result, lastBalance)
	if err != nil {
		return "", err
	}
	content := ofx.Document(root, cfg.OFX.Headers, cfg.OFX.CloseTag)

	if outputPath == "" {
		outputPath = fileutils.OutputPath(inputPath)
	}
	if err := fileutils.WriteFileWithBOM(outputPath, content); err != nil {
		return "", err
	}
	logger.Info("Wrote OFX file",
		logging.Field{Key: "file", Value: outputPath},
		logging.Field{Key: "transactions", Value: len(result)})

	return outputPath, nil
}
