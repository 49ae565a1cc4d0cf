package categories

import "gasdesk/infrastructure/erp"

// TypeTile is one click-to-filter tile for a category type.
type TypeTile struct {
	Type     string
	Count    int
	Selected bool
}

// PageData backs the category list screen.
type PageData struct {
	Tiles        []TypeTile
	AllCount     int
	AllSelected  bool
	Categories   []erp.Category
	Nav          string
	Status       string
	ErrorMessage string
}
