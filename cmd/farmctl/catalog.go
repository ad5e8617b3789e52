package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Animal categories (species and breed)",
	}

	var page domain.Page
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: a.printing(func(cmd *cobra.Command, _ []string) (json.RawMessage, error) {
			return a.categories.List(cmd.Context(), page)
		}),
	}
	addPageFlags(list, &page)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: a.byID(func(cmd *cobra.Command, id int) (json.RawMessage, error) {
			return a.categories.ByID(cmd.Context(), id)
		}),
	}

	search := &cobra.Command{
		Use:   "search <name>",
		Short: "Search categories by name",
		Args:  cobra.ExactArgs(1),
		RunE: a.printing(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
			return a.categories.Search(cmd.Context(), args[0])
		}),
	}

	lookups := &cobra.Command{
		Use:   "lookups",
		Short: "List category ids and names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.categories.Lookups(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(out)
		},
	}

	cmd.AddCommand(list, get, search, lookups)
	return cmd
}

func newInventoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Stock per category",
	}

	var page domain.Page
	list := &cobra.Command{
		Use:   "list",
		Short: "List inventory rows",
		Args:  cobra.NoArgs,
		RunE: a.printing(func(cmd *cobra.Command, _ []string) (json.RawMessage, error) {
			return a.inventory.List(cmd.Context(), page)
		}),
	}
	addPageFlags(list, &page)

	stock := &cobra.Command{
		Use:   "stock <category-id>",
		Short: "Show the stock row of a category",
		Args:  cobra.ExactArgs(1),
		RunE: a.byID(func(cmd *cobra.Command, id int) (json.RawMessage, error) {
			return a.inventory.ByCategoryID(cmd.Context(), id)
		}),
	}

	animals := &cobra.Command{
		Use:   "animals <inventory-id>",
		Short: "List animals tracked against an inventory row",
		Args:  cobra.ExactArgs(1),
		RunE: a.byID(func(cmd *cobra.Command, id int) (json.RawMessage, error) {
			return a.inventory.TrackedAnimals(cmd.Context(), id)
		}),
	}

	cmd.AddCommand(list, stock, animals)
	return cmd
}
