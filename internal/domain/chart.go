package domain

import (
	"fmt"
	"sort"
)

// Chart is an indexed chart of accounts. It is the single authority for
// account type lookups and therefore for the sign convention.
type Chart struct {
	byCode map[string]*Account
}

// NewChart builds a chart from a list of accounts. Later duplicates of
// a code silently win; provisioning is expected to keep codes unique.
func NewChart(accounts []*Account) *Chart {
	byCode := make(map[string]*Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return &Chart{byCode: byCode}
}

// Get returns the account for a code.
func (c *Chart) Get(code string) (*Account, error) {
	a, ok := c.byCode[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, code)
	}
	return a, nil
}

// AccountType returns the type of the account with the given code.
func (c *Chart) AccountType(code string) (AccountType, error) {
	a, err := c.Get(code)
	if err != nil {
		return "", err
	}
	return a.Type, nil
}

// Accounts returns all accounts ordered by code.
func (c *Chart) Accounts() []*Account {
	accounts := make([]*Account, 0, len(c.byCode))
	for _, a := range c.byCode {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts
}

// Len returns the number of accounts in the chart.
func (c *Chart) Len() int {
	return len(c.byCode)
}
