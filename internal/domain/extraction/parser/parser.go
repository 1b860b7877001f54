// Package parser maps extracted table grids onto candidate transactions.
//
// The mapping is positional and fixed: column 0 = date, 1 = description,
// 2 = category, 3 = type, 4 = amount. There is no header-driven re-mapping;
// the first row is always treated as a header and skipped.
//
// The parser never fails. Rows it cannot interpret are dropped without a
// trace; a smaller output is the only observable signal.
package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/docledger/internal/domain/extraction/category"
	"github.com/FACorreiaa/docledger/internal/domain/transaction"
)

// minCells is the number of leading cells a data row must have to be
// considered at all.
const minCells = 5

// DefaultCategory is assigned when the category cell is empty.
const DefaultCategory = "Other"

// Parser converts table grids into candidate transactions.
type Parser struct {
	categories *category.Normalizer
}

// New creates a parser without category canonicalization.
func New() *Parser {
	return &Parser{}
}

// WithCategories enables canonicalization of non-empty category cells.
func (p *Parser) WithCategories(n *category.Normalizer) *Parser {
	p.categories = n
	return p
}

// ParseGrid maps a grid onto candidate transactions. Grids with fewer than
// two rows (no header plus data) produce an empty result.
func (p *Parser) ParseGrid(grid [][]string) []*transaction.Candidate {
	if len(grid) < 2 {
		return nil
	}

	candidates := make([]*transaction.Candidate, 0, len(grid)-1)
	for _, row := range grid[1:] {
		if c := p.parseRow(row); c != nil {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

func (p *Parser) parseRow(row []string) *transaction.Candidate {
	if len(row) < minCells {
		return nil
	}

	dateStr := strings.TrimSpace(row[0])
	description := strings.TrimSpace(row[1])
	categoryStr := strings.TrimSpace(row[2])
	typeStr := strings.TrimSpace(row[3])
	amountStr := strings.TrimSpace(row[4])

	// Blank-line artifact from segmentation.
	if dateStr == "" && description == "" && categoryStr == "" && typeStr == "" && amountStr == "" {
		return nil
	}

	amount := ParseAmount(amountStr)

	date, ok := NormalizeDate(dateStr)
	if !ok || description == "" || amount.IsZero() {
		return nil
	}

	if categoryStr == "" {
		categoryStr = DefaultCategory
	} else if p.categories != nil {
		categoryStr = p.categories.Canonical(categoryStr)
	}

	txType := transaction.Type(typeStr)
	if typeStr == "" {
		if amount.Sign() > 0 {
			txType = transaction.TypeIncome
		} else {
			txType = transaction.TypeExpense
		}
	}

	return &transaction.Candidate{
		Date:        transaction.NewDate(date),
		Description: description,
		Category:    categoryStr,
		Type:        txType,
		Amount:      amount,
	}
}

// amountNoise matches everything that is not a digit, period, or minus sign.
var amountNoise = regexp.MustCompile(`[^0-9.\-]`)

// ParseAmount extracts a decimal amount from a raw cell such as "$1,234.56"
// or "(4.50)". A literal minus or opening parenthesis anywhere in the raw
// string forces the result negative. Unparseable cells yield zero, which the
// caller treats as a dropped row.
func ParseAmount(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}

	clean := amountNoise.ReplaceAllString(raw, "")
	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}

	if strings.ContainsAny(raw, "-(") {
		return amount.Abs().Neg()
	}
	return amount
}
