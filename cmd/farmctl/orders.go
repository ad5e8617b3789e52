package main

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/service"
)

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Customer orders",
	}

	var page domain.Page
	list := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Args:  cobra.NoArgs,
		RunE: a.printing(func(cmd *cobra.Command, _ []string) (json.RawMessage, error) {
			return a.orders.List(cmd.Context(), page)
		}),
	}
	addPageFlags(list, &page)

	var searchPage domain.Page
	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search orders",
		Args:  cobra.ExactArgs(1),
		RunE: a.printing(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
			return a.orders.Search(cmd.Context(), args[0], searchPage)
		}),
	}
	addPageFlags(search, &searchPage)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: a.byID(func(cmd *cobra.Command, id int) (json.RawMessage, error) {
			return a.orders.ByID(cmd.Context(), id)
		}),
	}

	status := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change the status of an order",
		Long: fmt.Sprintf("Change the status of an order. Valid statuses: %s, %s, %s, %s, %s.",
			domain.OrderPending, domain.OrderConfirmed, domain.OrderShipped, domain.OrderDelivered, domain.OrderCancelled),
		Args: cobra.ExactArgs(2),
		RunE: a.printing(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
			id, err := argInt("id", args[0])
			if err != nil {
				return nil, err
			}
			return a.orders.UpdateStatus(cmd.Context(), id, args[1])
		}),
	}

	var mapItem int
	mapAnimal := &cobra.Command{
		Use:   "map-animal <animal-id>",
		Short: "Assign a tracked animal to an order item",
		Args:  cobra.ExactArgs(1),
		RunE: a.byID(func(cmd *cobra.Command, id int) (json.RawMessage, error) {
			return a.orders.MapAnimal(cmd.Context(), id, mapItem)
		}),
	}
	mapAnimal.Flags().IntVar(&mapItem, "item", 0, "order item id")

	var unmapItem int
	unmapAnimal := &cobra.Command{
		Use:   "unmap-animal <animal-id>",
		Short: "Release a tracked animal from an order item",
		Args:  cobra.ExactArgs(1),
		RunE: a.byID(func(cmd *cobra.Command, id int) (json.RawMessage, error) {
			return a.orders.UnmapAnimal(cmd.Context(), id, unmapItem)
		}),
	}
	unmapAnimal.Flags().IntVar(&unmapItem, "item", 0, "order item id")

	lookups := &cobra.Command{
		Use:   "lookups",
		Short: "Customers and categories an order can be placed for",
		Args:  cobra.NoArgs,
		RunE: a.printing(func(cmd *cobra.Command, _ []string) (json.RawMessage, error) {
			l, err := a.orderForm.LoadLookups(cmd.Context())
			if err != nil {
				return nil, err
			}
			return json.Marshal(l)
		}),
	}

	cmd.AddCommand(list, search, get, status, lookups, newPlaceOrderCmd(a), mapAnimal, unmapAnimal)
	return cmd
}

// newPlaceOrderCmd fills an order draft from flags the way the order screen
// does: the category selects the stock row and its price, then the discount
// is derived from whichever of value or percent was given.
func newPlaceOrderCmd(a *app) *cobra.Command {
	var (
		draft           service.OrderDraft
		categoryID      int
		shipToBilling   bool
		unitPrice       decimal.Decimal
		discountValue   decimal.Decimal
		discountPercent decimal.Decimal
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place a single-item order",
		Args:  cobra.NoArgs,
		RunE: a.printing(func(cmd *cobra.Command, _ []string) (json.RawMessage, error) {
			ctx := cmd.Context()

			var stock *service.InventoryRow
			if categoryID > 0 {
				row, err := a.orderForm.SelectCategory(ctx, &draft, categoryID)
				if err != nil {
					return nil, err
				}
				stock = row
			}
			if cmd.Flags().Changed("unit-price") {
				draft.UnitPrice = unitPrice
			}
			if shipToBilling {
				draft.ShipToBilling()
			}
			switch {
			case cmd.Flags().Changed("discount-percent"):
				draft.SetDiscountPercent(discountPercent)
			case cmd.Flags().Changed("discount"):
				draft.SetDiscountValue(discountValue)
			}

			t := draft.Totals()
			a.log.Debug().
				Str("gross", t.Gross.StringFixed(2)).
				Str("total", t.Total.StringFixed(2)).
				Msg("order totals")

			return a.orderForm.Submit(ctx, draft, stock)
		}),
	}

	f := cmd.Flags()
	f.IntVar(&draft.CustomerID, "customer", 0, "customer id")
	f.IntVar(&categoryID, "category", 0, "category id")
	f.IntVar(&draft.Quantity, "quantity", 1, "quantity")
	f.IntVar(&draft.BillingAddressID, "billing", 0, "billing address id")
	f.IntVar(&draft.ShippingAddressID, "shipping", 0, "shipping address id")
	f.BoolVar(&shipToBilling, "ship-to-billing", false, "ship to the billing address")
	decimalFlag(cmd, &unitPrice, "unit-price", "override the stock unit price")
	decimalFlag(cmd, &discountValue, "discount", "discount amount")
	decimalFlag(cmd, &discountPercent, "discount-percent", "discount percentage")
	decimalFlag(cmd, &draft.Tax, "tax", "tax amount")
	decimalFlag(cmd, &draft.Shipping, "shipping-cost", "shipping charge")
	return cmd
}
