package godowns

import "gasdesk/infrastructure/erp"

const locationType = "godown"

// Row is one godown in display order with its derived default marker.
type Row struct {
	Godown    erp.Godown
	IsDefault bool
}

// PageData backs both the standalone settings page and the embedded
// general-settings tab.
type PageData struct {
	Rows         []Row
	Nav          string
	Status       string
	ErrorMessage string
	// Embedded selects the general-settings tab shell instead of the
	// standalone page.
	Embedded bool
}
