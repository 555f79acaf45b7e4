package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/ledgervox/internal/cli"
	"github.com/Veraticus/ledgervox/internal/common"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/money"
	"github.com/Veraticus/ledgervox/internal/service"
	"github.com/schollz/progressbar/v3"
)

// ErrBadHeader is returned when the first row is not the export header.
var ErrBadHeader = errors.New("csv header does not match export format")

// Importer reads files in the export format.
type Importer struct {
	progress io.Writer
}

var _ service.Importer = (*Importer)(nil)

// NewImporter creates an importer. When progress is non-nil a progress bar
// is drawn on it.
func NewImporter(progress io.Writer) *Importer {
	return &Importer{progress: progress}
}

// Import implements service.Importer. Rows that fail to parse are logged
// and skipped; the category is taken verbatim and resolved by the caller.
func (im *Importer) Import(ctx context.Context, r io.Reader) ([]model.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 || !isHeader(records[0]) {
		return nil, ErrBadHeader
	}
	records = records[1:]

	bar := im.bar(len(records))
	defer cli.Finish(bar)

	txns := make([]model.Transaction, 0, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cli.Advance(bar)

		t, err := parseRecord(rec)
		if err != nil {
			common.LogError(err, "Skipping csv row", common.Fields{"row": i + 2})
			continue
		}
		txns = append(txns, t)
	}
	return txns, nil
}

func (im *Importer) bar(total int) *progressbar.ProgressBar {
	if im.progress == nil {
		return nil
	}
	return cli.NewProgressBar(im.progress, total, "Importing transactions...")
}

func isHeader(rec []string) bool {
	if len(rec) != len(Header) {
		return false
	}
	for i, h := range Header {
		if !strings.EqualFold(strings.TrimSpace(rec[i]), h) {
			return false
		}
	}
	return true
}

func parseRecord(rec []string) (model.Transaction, error) {
	if len(rec) != len(Header) {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", len(Header), len(rec))
	}
	date, err := model.ParseDate(strings.TrimSpace(rec[0]))
	if err != nil {
		return model.Transaction{}, err
	}
	typ, err := model.ParseTransactionType(rec[1])
	if err != nil {
		return model.Transaction{}, err
	}
	amount, err := money.Parse(rec[4])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("amount %q: %w", rec[4], err)
	}
	return model.Transaction{
		Date:        date,
		Type:        typ,
		Category:    strings.TrimSpace(rec[2]),
		Description: rec[3],
		Amount:      amount,
	}, nil
}
