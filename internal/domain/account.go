package domain

// AccountType classifies an account in the chart of accounts.
type AccountType string

const (
	TypeAsset       AccountType = "asset"
	TypeFixedAsset  AccountType = "fixed_asset"
	TypeContraAsset AccountType = "contra_asset"
	TypeLiability   AccountType = "liability"
	TypeEquity      AccountType = "equity"
	TypeRevenue     AccountType = "revenue"
	TypeExpense     AccountType = "expense"
)

// Side is the normal side of an account type or the class of a
// transaction type.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Valid reports whether the account type is one of the known categories.
func (t AccountType) Valid() bool {
	switch t {
	case TypeAsset, TypeFixedAsset, TypeContraAsset, TypeLiability, TypeEquity, TypeRevenue, TypeExpense:
		return true
	}
	return false
}

// NormalSide returns the side that increases the balance of this account
// type. ContraAsset is credit-normal: a credit grows accumulated
// depreciation, which is reported as a negative adjustment to assets.
func (t AccountType) NormalSide() Side {
	switch t {
	case TypeAsset, TypeFixedAsset, TypeExpense:
		return SideDebit
	default:
		return SideCredit
	}
}

// Account is a row in the chart of accounts. Accounts are provisioned
// externally and are read-only to the derivation engine.
type Account struct {
	Code        string
	Name        string
	Type        AccountType
	Category    string
	Subcategory string
}
