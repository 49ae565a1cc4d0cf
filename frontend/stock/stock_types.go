package stock

import (
	"gasdesk/infrastructure/erp"
	"gasdesk/infrastructure/flow"
)

// Wizard states.
const (
	StateSelectProduct flow.State = "select_product"
	StateQuantities    flow.State = "quantities"
)

// Transitions returns the two-step wizard machine: forward to the counters,
// back (reset) to product selection from anywhere.
func Transitions() *flow.Machine {
	return flow.New(StateSelectProduct, map[flow.State][]flow.State{
		StateSelectProduct: {StateQuantities},
		StateQuantities:    {},
	})
}

// Counters are the five quantity fields of step two, all defaulting to zero.
type Counters struct {
	Filled      int
	Empty       int
	Defective   int
	Sound       int
	DefectivePR int
}

// Sum is used to block the all-zero submission.
func (c Counters) Sum() int {
	return c.Filled + c.Empty + c.Defective + c.Sound + c.DefectivePR
}

// PageData backs both wizard steps.
type PageData struct {
	State        flow.State
	Products     []erp.Product
	Product      erp.Product
	Godowns      []erp.Godown
	Counters     Counters
	Nav          string
	Status       string
	ErrorMessage string
}
