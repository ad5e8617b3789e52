package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

func newCustomersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Customers and their addresses",
	}

	var (
		page   domain.Page
		filter domain.CustomerFilter
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Args:  cobra.NoArgs,
		RunE: a.printing(func(cmd *cobra.Command, _ []string) (json.RawMessage, error) {
			return a.customers.List(cmd.Context(), page, filter)
		}),
	}
	addPageFlags(list, &page)
	list.Flags().StringVar(&filter.Name, "name", "", "filter by name")
	list.Flags().StringVar(&filter.Phone, "phone", "", "filter by phone")

	var countFilter domain.CustomerFilter
	count := &cobra.Command{
		Use:   "count",
		Short: "Count customers",
		Args:  cobra.NoArgs,
		RunE: a.printing(func(cmd *cobra.Command, _ []string) (json.RawMessage, error) {
			return a.customers.Count(cmd.Context(), countFilter)
		}),
	}
	count.Flags().StringVar(&countFilter.CountType, "by", "all", "all, name or phone")
	count.Flags().StringVar(&countFilter.Name, "name", "", "name to match")
	count.Flags().StringVar(&countFilter.Phone, "phone", "", "phone to match")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one customer",
		Args:  cobra.ExactArgs(1),
		RunE: a.byID(func(cmd *cobra.Command, id int) (json.RawMessage, error) {
			return a.customers.ByID(cmd.Context(), id)
		}),
	}

	var in domain.CustomerInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Add a customer",
		Args:  cobra.NoArgs,
		RunE: a.printing(func(cmd *cobra.Command, _ []string) (json.RawMessage, error) {
			raw, err := a.customers.Create(cmd.Context(), in)
			if err == nil {
				a.bus.Success("Customer created")
			}
			return raw, err
		}),
	}
	create.Flags().StringVar(&in.FirstName, "first-name", "", "first name")
	create.Flags().StringVar(&in.LastName, "last-name", "", "last name")
	create.Flags().StringVar(&in.Email, "email", "", "email")
	create.Flags().StringVar(&in.Phone, "phone", "", "phone")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: a.byID(func(cmd *cobra.Command, id int) (json.RawMessage, error) {
			raw, err := a.customers.Delete(cmd.Context(), id)
			if err == nil {
				a.bus.Success("Customer deleted")
			}
			return raw, err
		}),
	}

	addresses := &cobra.Command{
		Use:   "addresses <customer-id>",
		Short: "List the addresses of a customer",
		Args:  cobra.ExactArgs(1),
		RunE: a.byID(func(cmd *cobra.Command, id int) (json.RawMessage, error) {
			return a.customers.Addresses(cmd.Context(), id)
		}),
	}

	states := &cobra.Command{
		Use:   "states",
		Short: "List states for address entry",
		Args:  cobra.NoArgs,
		RunE: a.printing(func(cmd *cobra.Command, _ []string) (json.RawMessage, error) {
			return a.customers.States(cmd.Context())
		}),
	}

	districts := &cobra.Command{
		Use:   "districts <state>",
		Short: "List districts of a state",
		Args:  cobra.ExactArgs(1),
		RunE: a.printing(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
			return a.customers.Districts(cmd.Context(), args[0])
		}),
	}

	pincodes := &cobra.Command{
		Use:   "pincodes <district>",
		Short: "List pincodes of a district",
		Args:  cobra.ExactArgs(1),
		RunE: a.printing(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
			return a.customers.Pincodes(cmd.Context(), args[0])
		}),
	}

	cmd.AddCommand(list, count, get, create, del, addresses, states, districts, pincodes)
	return cmd
}
