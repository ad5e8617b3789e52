package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "farmctl",
		Short: "Manage the farm from the terminal",
		Long: `farmctl talks to the farm management API: animals, categories,
customers, orders, material purchases and the dashboard.

Run "farmctl login" first. The session is kept in the token store selected
by TOKEN_STORE (file, memory, redis or mongo) until logout or until the API
rejects it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch a.format {
			case formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown output format %q (want json or yaml)", a.format)
			}
			return a.setup(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&a.format, "output", "o", formatJSON, "output format: json or yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newDashboardCmd(a),
		newAnimalsCmd(a),
		newMilkCmd(a),
		newCategoriesCmd(a),
		newInventoryCmd(a),
		newCustomersCmd(a),
		newOrdersCmd(a),
		newPurchasesCmd(a),
	)
	return root
}
