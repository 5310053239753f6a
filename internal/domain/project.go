package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectCost is a cost incurred on a project.
type ProjectCost struct {
	ID          string
	ProjectID   string
	Amount      decimal.Decimal
	Date        time.Time
	Status      string
	Description string
}

// Billing is an amount billed to the customer of a project.
type Billing struct {
	ID          string
	ProjectID   string
	Amount      decimal.Decimal
	Date        time.Time
	Status      string
	Description string
}

// Project groups costs and billings. Work in progress is derived, never
// stored.
type Project struct {
	ID       string
	Name     string
	Status   string
	Costs    []ProjectCost
	Billings []Billing
}

// WIP returns costs incurred minus amounts billed. Positive means
// unbilled earned value, negative means the project is over-billed.
func (p *Project) WIP() decimal.Decimal {
	wip := decimal.Zero
	for _, c := range p.Costs {
		wip = wip.Add(c.Amount)
	}
	for _, b := range p.Billings {
		wip = wip.Sub(b.Amount)
	}
	return wip
}

// ProjectWIP is the valuation of a single project.
type ProjectWIP struct {
	ProjectID string
	Name      string
	WIP       decimal.Decimal
}

// WIPValuation aggregates per-project work in progress. Over-billed
// projects are never netted against under-billed ones: positive values
// accumulate into TotalAsset, negative ones into TotalOverbilling.
type WIPValuation struct {
	Projects         []ProjectWIP
	TotalAsset       decimal.Decimal
	TotalOverbilling decimal.Decimal
}

// Net returns the ledger-comparable net WIP position, asset minus
// overbilling.
func (v *WIPValuation) Net() decimal.Decimal {
	return v.TotalAsset.Sub(v.TotalOverbilling)
}

// ValueProjects computes the WIP valuation across all projects in a
// single pass over costs and billings.
func ValueProjects(projects []*Project) *WIPValuation {
	valuation := &WIPValuation{
		Projects:         make([]ProjectWIP, 0, len(projects)),
		TotalAsset:       decimal.Zero,
		TotalOverbilling: decimal.Zero,
	}

	for _, p := range projects {
		wip := p.WIP()
		valuation.Projects = append(valuation.Projects, ProjectWIP{
			ProjectID: p.ID,
			Name:      p.Name,
			WIP:       wip,
		})
		if wip.IsNegative() {
			valuation.TotalOverbilling = valuation.TotalOverbilling.Add(wip.Neg())
		} else {
			valuation.TotalAsset = valuation.TotalAsset.Add(wip)
		}
	}

	return valuation
}
