package agencydelete

import (
	"gasdesk/infrastructure/erp"
	"gasdesk/infrastructure/flow"
)

// States of the deletion flow. The machine is linear; any state may reset
// back to search.
const (
	StateSearch  flow.State = "search"
	StateVerify  flow.State = "verify"
	StateConfirm flow.State = "confirm"
	StateResult  flow.State = "result"
)

// Transitions returns the deletion flow machine.
func Transitions() *flow.Machine {
	return flow.New(StateSearch, map[flow.State][]flow.State{
		StateSearch:  {StateVerify},
		StateVerify:  {StateConfirm},
		StateConfirm: {StateResult},
	})
}

// Result is the terminal outcome shown on the result screen.
type Result struct {
	Success    bool
	AgencyName string
	Message    string
}

// FlowState is one in-flight deletion flow. One per session; the search
// input stays disabled while a flow holds an agency.
type FlowState struct {
	ID     string
	State  flow.State
	Agency erp.Agency
	// Code is the locally generated confirmation code. It is displayed to
	// the operator and never sent to the ERP.
	Code   string
	Result Result
}

type PageData struct {
	State        flow.State
	Agency       erp.Agency
	Code         string
	Result       Result
	Nav          string
	ErrorMessage string
}
