// Package ofx imports OFX/QFX bank and credit card statements as ledger
// transactions.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"

	"github.com/Veraticus/ledgervox/internal/classification"
	"github.com/Veraticus/ledgervox/internal/cli"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/service"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Parser converts statements into transactions. Credits become income and
// debits become expenses; the category comes from the payee name and
// falls back to "Other".
type Parser struct {
	detector *classification.PayeeDetector
	resolver *classification.Resolver
	progress io.Writer
}

var _ service.Importer = (*Parser)(nil)

// NewParser creates a parser. progress may be nil to disable the progress
// bar.
func NewParser(detector *classification.PayeeDetector, resolver *classification.Resolver, progress io.Writer) *Parser {
	return &Parser{detector: detector, resolver: resolver, progress: progress}
}

type statement struct {
	account      string
	transactions []ofxgo.Transaction
}

// preprocessOFX fixes common formatting issues in OFX files.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// SEVERITY must be upper case.
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// SGML files sometimes drop the closing bracket of a bare tag.
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

func parse(reader io.Reader) (*ofxgo.Response, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}
	return resp, nil
}

func statements(resp *ofxgo.Response) []statement {
	var stmts []statement
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			stmts = append(stmts, statement{
				account:      string(stmt.BankAcctFrom.AcctID),
				transactions: stmt.BankTranList.Transactions,
			})
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			stmts = append(stmts, statement{
				account:      string(stmt.CCAcctFrom.AcctID),
				transactions: stmt.BankTranList.Transactions,
			})
		}
	}
	return stmts
}

// Import implements service.Importer.
func (p *Parser) Import(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	resp, err := parse(reader)
	if err != nil {
		return nil, err
	}

	stmts := statements(resp)
	total := 0
	for _, s := range stmts {
		total += len(s.transactions)
	}

	var bar *progressbar.ProgressBar
	if p.progress != nil {
		bar = cli.NewProgressBar(p.progress, total, "Importing statement...")
	}
	defer cli.Finish(bar)

	transactions := make([]model.Transaction, 0, total)
	for _, s := range stmts {
		for _, ofxTx := range s.transactions {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			cli.Advance(bar)

			tx, ok := p.convertTransaction(ofxTx)
			if !ok {
				slog.Debug("Skipping zero-amount statement line", "account", s.account, "fitid", ofxTx.FiTID)
				continue
			}
			transactions = append(transactions, tx)
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(transactions),
		"statements", len(stmts))

	return transactions, nil
}

// convertTransaction maps one statement line. OFX amounts are negative for
// debits.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction) (model.Transaction, bool) {
	amount := decimal.NewFromBigRat(&ofxTx.TrnAmt.Rat, 2)
	if amount.IsZero() {
		return model.Transaction{}, false
	}

	typ := model.TypeIncome
	if amount.IsNegative() {
		typ = model.TypeExpense
		amount = amount.Neg()
	}

	payee := extractMerchantName(ofxTx)
	return model.Transaction{
		Type:        typ,
		Amount:      amount,
		Category:    p.categorize(payee, typ),
		Description: payee,
		Date:        model.DateOf(ofxTx.DtPosted.Time),
	}, true
}

func (p *Parser) categorize(payee string, t model.TransactionType) string {
	if p.detector != nil {
		if cat, ok := p.detector.Detect(payee, t); ok {
			return cat
		}
	}
	if p.resolver != nil {
		return p.resolver.ResolveOrOther(payee, t)
	}
	return model.OtherCategory
}

// extractMerchantName tries to get a clean merchant name from OFX data.
func extractMerchantName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := string(tx.Name)
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}
	name = strings.TrimSpace(name)

	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"ACH CREDIT ",
		"UPI/",
		"NEFT/",
		"IMPS/",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Leading "MM/DD " date stamps.
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

func isGenericDescription(name string) bool {
	switch strings.ToUpper(name) {
	case "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE", "UPI":
		return true
	}
	return false
}

// Accounts lists the distinct account ids in a statement file.
func Accounts(reader io.Reader) ([]string, error) {
	resp, err := parse(reader)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var accounts []string
	for _, s := range statements(resp) {
		if s.account == "" || seen[s.account] {
			continue
		}
		seen[s.account] = true
		accounts = append(accounts, s.account)
	}
	return accounts, nil
}
