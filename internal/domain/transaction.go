package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TxType tags a posted transaction. The tag, not the account, decides
// whether the posting acts on the debit or the credit side.
type TxType string

const (
	TxDebit       TxType = "debit"
	TxCredit      TxType = "credit"
	TxIncome      TxType = "income"
	TxExpense     TxType = "expense"
	TxWipIncrease TxType = "wip_increase"
	TxWipDecrease TxType = "wip_decrease"
	TxRevenue     TxType = "revenue"
)

// Valid reports whether the transaction type is known.
func (t TxType) Valid() bool {
	switch t {
	case TxDebit, TxCredit, TxIncome, TxExpense, TxWipIncrease, TxWipDecrease, TxRevenue:
		return true
	}
	return false
}

// Class returns the side a transaction type acts on. Debit-class types
// are Debit, Expense and WipIncrease; everything else is credit-class.
func (t TxType) Class() Side {
	switch t {
	case TxDebit, TxExpense, TxWipIncrease:
		return SideDebit
	default:
		return SideCredit
	}
}

// Transaction is a single ledger posting. Amounts are stored
// non-negative; the sign is derived from the type tag and the account's
// normal side. The engine never mutates transactions.
type Transaction struct {
	ID          string
	Date        time.Time
	Type        TxType
	AccountCode string
	Amount      decimal.Decimal
	Description string
	ProjectID   string
}

// Validate checks the structural invariants of a posting.
func (tx *Transaction) Validate() error {
	if !tx.Type.Valid() {
		return fmt.Errorf("%w: transaction %s has type %q", ErrInvalidTxType, tx.ID, tx.Type)
	}
	if tx.Amount.IsNegative() {
		return fmt.Errorf("%w: transaction %s has amount %s", ErrMalformedAmount, tx.ID, tx.Amount)
	}
	return nil
}

// Contribution returns the signed effect of the transaction on an
// account of the given type: +amount when the transaction class matches
// the account's normal side, -amount otherwise.
func (tx *Transaction) Contribution(accountType AccountType) decimal.Decimal {
	if tx.Type.Class() == accountType.NormalSide() {
		return tx.Amount
	}
	return tx.Amount.Neg()
}
