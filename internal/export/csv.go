// Package export writes the transaction list as CSV and reads it back.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
)

// FileName is the name of the exported file.
const FileName = "financial_data.csv"

// Header is the first line of every export.
var Header = []string{"Date", "Type", "Category", "Description", "Amount"}

// WriteCSV writes transactions in list order. The description is always
// quoted; the remaining fields are written as-is.
func WriteCSV(w io.Writer, transactions []model.Transaction) error {
	if _, err := io.WriteString(w, strings.Join(Header, ",")+"\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, t := range transactions {
		line := fmt.Sprintf("%s,%s,%s,%s,%s\n",
			t.Date.String(),
			t.Type,
			t.Category,
			quote(t.Description),
			t.Amount.String())
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("failed to write transaction %s: %w", t.ID, err)
		}
	}
	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FileExporter writes FileName into a directory.
type FileExporter struct {
	dir string
}

var _ service.Exporter = (*FileExporter)(nil)

// NewFileExporter creates an exporter writing into dir.
func NewFileExporter(dir string) *FileExporter {
	if dir == "" {
		dir = "."
	}
	return &FileExporter{dir: dir}
}

// Path returns the file the exporter writes.
func (e *FileExporter) Path() string {
	return filepath.Join(e.dir, FileName)
}

// Export implements service.Exporter. The file is written to a temporary
// name first and renamed into place.
func (e *FileExporter) Export(ctx context.Context, transactions []model.Transaction) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(e.dir, FileName+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := WriteCSV(tmp, transactions); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}
	if err := os.Rename(tmp.Name(), e.Path()); err != nil {
		return "", fmt.Errorf("failed to move export into place: %w", err)
	}
	return e.Path(), nil
}
