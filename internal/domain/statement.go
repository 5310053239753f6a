package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceLine is a single account line on a statement section.
type BalanceLine struct {
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
}

// DriftResult reports the discrepancy between a ledger-implied total and
// the authoritative register total for one overlapping area. Drift is a
// data-quality signal attached to the statement, never a correcting
// entry.
type DriftResult struct {
	Area          string          `json:"area"`
	LedgerBalance decimal.Decimal `json:"ledgerBalance"`
	RegisterTotal decimal.Decimal `json:"registerTotal"`
	Drift         decimal.Decimal `json:"drift"`
	Tolerance     decimal.Decimal `json:"tolerance"`
	OK            bool            `json:"ok"`
}

// BalanceSheet is the derived balance sheet as of a point in time.
type BalanceSheet struct {
	AsOf                      time.Time       `json:"asOf"`
	Assets                    []BalanceLine   `json:"assets"`
	Liabilities               []BalanceLine   `json:"liabilities"`
	Equity                    []BalanceLine   `json:"equity"`
	NetIncome                 decimal.Decimal `json:"netIncome"`
	TotalAssets               decimal.Decimal `json:"totalAssets"`
	TotalLiabilities          decimal.Decimal `json:"totalLiabilities"`
	TotalEquity               decimal.Decimal `json:"totalEquity"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"totalLiabilitiesAndEquity"`
	IsBalanced                bool            `json:"isBalanced"`
	Difference                decimal.Decimal `json:"difference"`
	Warnings                  []DriftResult   `json:"warnings,omitempty"`
}

// CashFlowItem is one itemized activity on the cash flow statement.
type CashFlowItem struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	AccountCode string          `json:"accountCode,omitempty"`
	ProjectID   string          `json:"projectId,omitempty"`
}

// CashFlowSummary totals the three activity classes.
type CashFlowSummary struct {
	TotalOperating decimal.Decimal `json:"totalOperating"`
	TotalInvesting decimal.Decimal `json:"totalInvesting"`
	TotalFinancing decimal.Decimal `json:"totalFinancing"`
	NetCashFlow    decimal.Decimal `json:"netCashFlow"`
}

// CashFlowStatement is the derived cash flow statement for a period.
type CashFlowStatement struct {
	From      time.Time       `json:"from"`
	To        time.Time       `json:"to"`
	Operating []CashFlowItem  `json:"operating"`
	Investing []CashFlowItem  `json:"investing"`
	Financing []CashFlowItem  `json:"financing"`
	Summary   CashFlowSummary `json:"summary"`
}

// Append adds an item to the section for the given activity class.
func (cf *CashFlowStatement) Append(activity Activity, item CashFlowItem) {
	switch activity {
	case ActivityInvesting:
		cf.Investing = append(cf.Investing, item)
	case ActivityFinancing:
		cf.Financing = append(cf.Financing, item)
	default:
		cf.Operating = append(cf.Operating, item)
	}
}

// TrialBalanceRow is one account on the trial balance, with its balance
// shown in the debit or credit column depending on sign and normal side.
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	Name        string          `json:"name"`
	Type        AccountType     `json:"type"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance lists all account balances in debit/credit columns.
type TrialBalance struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}
