package domain

import "time"

// Snapshot is one consistent read of everything a statement derivation
// needs. It is fetched in a single transaction so that concurrent writes
// cannot split the totals, and the engine treats it as immutable.
type Snapshot struct {
	AsOf               time.Time
	From               time.Time
	To                 time.Time
	Accounts           []*Account
	Transactions       []*Transaction
	FixedAssets        []*FixedAsset
	Projects           []*Project
	CashflowCategories []*CashflowCategory
}

// Chart builds the indexed chart of accounts for this snapshot.
func (s *Snapshot) Chart() *Chart {
	return NewChart(s.Accounts)
}

// CategoryIndex builds the explicit cashflow classification lookup.
func (s *Snapshot) CategoryIndex() map[string]*CashflowCategory {
	idx := make(map[string]*CashflowCategory, len(s.CashflowCategories))
	for _, c := range s.CashflowCategories {
		idx[c.AccountCode] = c
	}
	return idx
}
