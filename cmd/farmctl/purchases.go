package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/service"
)

func newPurchasesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "purchases",
		Aliases: []string{"purchase"},
		Short:   "Material purchases (feed, medicine, equipment)",
	}

	var (
		page   domain.Page
		filter domain.PurchaseFilter
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List purchases",
		Args:  cobra.NoArgs,
		RunE: a.printing(func(cmd *cobra.Command, _ []string) (json.RawMessage, error) {
			return a.purchases.List(cmd.Context(), page, filter)
		}),
	}
	addPageFlags(list, &page)
	list.Flags().StringVar(&filter.StartDate, "from", "", "start date (YYYY-MM-DD)")
	list.Flags().StringVar(&filter.EndDate, "to", "", "end date (YYYY-MM-DD)")
	list.Flags().StringVar(&filter.MaterialID, "material", "", "material id")
	list.Flags().StringVar(&filter.SupplierID, "supplier", "", "supplier id")

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search purchases",
		Args:  cobra.ExactArgs(1),
		RunE: a.printing(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
			return a.purchases.Search(cmd.Context(), args[0])
		}),
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one purchase",
		Args:  cobra.ExactArgs(1),
		RunE: a.byID(func(cmd *cobra.Command, id int) (json.RawMessage, error) {
			return a.purchases.ByID(cmd.Context(), id)
		}),
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a purchase",
		Args:  cobra.ExactArgs(1),
		RunE: a.byID(func(cmd *cobra.Command, id int) (json.RawMessage, error) {
			raw, err := a.purchases.Delete(cmd.Context(), id)
			if err == nil {
				a.bus.Success("Purchase deleted")
			}
			return raw, err
		}),
	}

	var draft service.PurchaseDraft
	create := &cobra.Command{
		Use:   "create",
		Short: "Record a material purchase",
		Long: `Record a material purchase. Gross, discount and total are derived from
quantity, unit price and either --discount or --discount-percent. The purchase
date defaults to today.`,
		Args: cobra.NoArgs,
		RunE: a.printing(func(cmd *cobra.Command, _ []string) (json.RawMessage, error) {
			return a.purchForm.Submit(cmd.Context(), draft)
		}),
	}
	f := create.Flags()
	f.StringVar(&draft.MaterialName, "material", "", "material name")
	f.StringVar(&draft.TypeOfMaterial, "type", "", "material type")
	f.StringVar(&draft.PurchaseDate, "date", "", "purchase date (YYYY-MM-DD)")
	f.StringVar(&draft.MaterialExpiryDate, "expires", "", "expiry date (YYYY-MM-DD)")
	f.StringVar(&draft.BatchNumber, "batch", "", "batch number")
	f.StringVar(&draft.Supplier, "supplier", "", "supplier")
	f.StringVar(&draft.MaterialDescription, "description", "", "description")
	f.StringVar(&draft.Notes, "notes", "", "notes")
	f.IntVar(&draft.Quantity, "quantity", 0, "quantity")
	decimalFlag(create, &draft.UnitPrice, "unit-price", "unit price")
	decimalFlag(create, &draft.DiscountAmount, "discount", "discount amount")
	decimalFlag(create, &draft.DiscountPercent, "discount-percent", "discount percentage")

	cmd.AddCommand(list, search, get, del, create)
	return cmd
}
