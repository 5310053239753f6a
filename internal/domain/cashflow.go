package domain

// Activity is a cash flow statement activity class.
type Activity string

const (
	ActivityOperating Activity = "operating"
	ActivityInvesting Activity = "investing"
	ActivityFinancing Activity = "financing"
)

// Valid reports whether the activity is a known class.
func (a Activity) Valid() bool {
	switch a {
	case ActivityOperating, ActivityInvesting, ActivityFinancing:
		return true
	}
	return false
}

// CashflowCategory is an explicit per-account override of the default
// type-based cash flow classification. When present it wins.
type CashflowCategory struct {
	AccountCode string
	Activity    Activity
	Subcategory string
}
