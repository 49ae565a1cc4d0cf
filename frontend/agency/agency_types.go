package agency

import "gasdesk/infrastructure/erp"

// MaxContacts is the most phone contacts an agency may carry.
const MaxContacts = 3

// ContactTypes is the fixed contact type enum in display order.
var ContactTypes = []string{"office", "mobile", "whatsapp"}

type PageData struct {
	Agency       erp.Agency
	Nav          string
	Status       string
	ErrorMessage string
}
