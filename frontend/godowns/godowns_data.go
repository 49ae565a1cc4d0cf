package godowns

import (
	"context"
	"sort"

	"gasdesk/infrastructure/erp"
)

// LoadRows fetches godowns and returns them sorted ascending by creation
// time. The first row is the default godown; the designation is derived
// from ordering alone and is not stored or editable.
func LoadRows(ctx context.Context, api *erp.Client) ([]Row, error) {
	godowns, err := api.ListStockLocations(ctx, locationType)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(godowns, func(i, j int) bool {
		return godowns[i].CreatedAt.Before(godowns[j].CreatedAt)
	})

	rows := make([]Row, 0, len(godowns))
	for i, g := range godowns {
		rows = append(rows, Row{Godown: g, IsDefault: i == 0})
	}
	return rows, nil
}
