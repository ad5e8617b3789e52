package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

var seedCategories = []domain.CategoryInput{
	{SKU: "COW-GIR", Species: "cow", Name: "Gir", Description: "Indigenous dairy breed", BasePrice: 65000},
	{SKU: "BUF-MUR", Species: "buffalo", Name: "Murrah", Description: "High-yield buffalo", BasePrice: 90000},
	{SKU: "GOAT-TEL", Species: "goat", Name: "Tellicherry", BasePrice: 12000},
}

// SeedCatalog fills an empty category repository with a few sample product
// lines. A repository that already has categories is left alone.
func SeedCatalog(ctx context.Context, categories ports.CategoryRepository) error {
	n, err := categories.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, in := range seedCategories {
		if _, err := categories.Create(ctx, in); err != nil && !errors.Is(err, domain.ErrConflict) {
			return fmt.Errorf("seed category %s: %w", in.SKU, err)
		}
	}
	return nil
}
