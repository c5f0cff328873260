// Package fileutils provides the file IO glue around the conversion pipeline.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html/charset"
)

// UTF8BOM prefixes the OFX output so finance software detects the encoding.
var UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileExists checks if a path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadTextFile reads a whole file and decodes it from the named single-byte
// encoding ("latin1", "windows-1252", ...) into UTF-8.
func ReadTextFile(path, encoding string) (string, error) {
	file, err := os.Open(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader, err := charset.NewReaderLabel(encoding, file)
	if err != nil {
		return "", fmt.Errorf("unsupported encoding %q: %w", encoding, err)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// WriteFileWithBOM writes UTF-8 content prefixed with the byte-order mark.
func WriteFileWithBOM(path, content string) error {
	data := make([]byte, 0, len(UTF8BOM)+len(content))
	data = append(data, UTF8BOM...)
	data = append(data, content...)

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// OutputPath derives the OFX output file name from the input file's base
// name, in the current working directory.
func OutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".ofx"
}
