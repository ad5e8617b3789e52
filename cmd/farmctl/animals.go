package main

import (
	"github.com/spf13/cobra"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

func newAnimalsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "animals",
		Aliases: []string{"animal"},
		Short:   "Tracked animals",
	}

	var page domain.Page
	list := &cobra.Command{
		Use:   "list",
		Short: "List tracked animals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := a.animals.List(cmd.Context(), page)
			if err != nil {
				return err
			}
			return a.printRaw(raw)
		},
	}
	addPageFlags(list, &page)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one animal by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argInt("id", args[0])
			if err != nil {
				return err
			}
			raw, err := a.animals.ByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.printRaw(raw)
		},
	}

	tag := &cobra.Command{
		Use:   "tag <tag-id>",
		Short: "Show one animal by tag id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := a.animals.ByTagID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printRaw(raw)
		},
	}

	count := &cobra.Command{
		Use:   "count",
		Short: "Count tracked animals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := a.animals.Count(cmd.Context())
			if err != nil {
				return err
			}
			return a.printRaw(raw)
		},
	}

	var lookupFilters map[string]string
	lookup := &cobra.Command{
		Use:   "lookup [search]",
		Short: "Search animals for pickers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			search := ""
			if len(args) == 1 {
				search = args[0]
			}
			raw, err := a.animals.Lookup(cmd.Context(), search, lookupFilters)
			if err != nil {
				return err
			}
			return a.printRaw(raw)
		},
	}
	lookup.Flags().StringToStringVar(&lookupFilters, "filter", nil, "extra filters as key=value")

	var in domain.AnimalInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Register an animal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := a.animals.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			a.bus.Success("Animal created")
			return a.printRaw(raw)
		},
	}
	create.Flags().IntVar(&in.CategoryID, "category", 0, "category id")
	create.Flags().StringVar(&in.Gender, "gender", "", "male or female")
	create.Flags().StringVar(&in.Status, "status", domain.AnimalActive, "status")
	create.Flags().StringVar(&in.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	create.Flags().StringVar(&in.PurchaseDate, "purchase-date", "", "purchase date (YYYY-MM-DD)")
	create.Flags().StringVar(&in.Source, "source", "", "where the animal came from")
	create.Flags().StringVar(&in.SourceReference, "source-ref", "", "source reference")
	create.Flags().Float64Var(&in.PurchasePrice, "purchase-price", 0, "purchase price")

	var eventsPage domain.Page
	events := &cobra.Command{
		Use:   "events <animal-id>",
		Short: "List events of an animal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argInt("animal-id", args[0])
			if err != nil {
				return err
			}
			raw, err := a.animals.Events(cmd.Context(), id, eventsPage)
			if err != nil {
				return err
			}
			return a.printRaw(raw)
		},
	}
	events.Flags().IntVar(&eventsPage.Limit, "limit", 0, "page size (default 10)")
	events.Flags().IntVar(&eventsPage.Offset, "offset", 0, "rows to skip")

	cmd.AddCommand(list, get, tag, count, lookup, create, events)
	return cmd
}

func newMilkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milk",
		Short: "Milk yield records",
	}

	var page domain.Page
	list := &cobra.Command{
		Use:   "list [animal-id]",
		Short: "List milk events, optionally for one animal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := 0
			if len(args) == 1 {
				n, err := argInt("animal-id", args[0])
				if err != nil {
					return err
				}
				id = n
			}
			raw, err := a.animals.MilkEvents(cmd.Context(), id, page)
			if err != nil {
				return err
			}
			return a.printRaw(raw)
		},
	}
	list.Flags().IntVar(&page.Limit, "limit", 0, "page size (default 10)")
	list.Flags().IntVar(&page.Offset, "offset", 0, "rows to skip")

	var ev domain.AnimalEventInput
	record := &cobra.Command{
		Use:   "record <animal-id>",
		Short: "Record a milking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := argInt("animal-id", args[0])
			if err != nil {
				return err
			}
			ev.AnimalID = id
			ev.EventType = "milk"
			raw, err := a.animals.CreateEvent(cmd.Context(), ev)
			if err != nil {
				return err
			}
			a.bus.Success("Milk event recorded")
			return a.printRaw(raw)
		},
	}
	record.Flags().StringVar(&ev.EventDate, "date", "", "event date (YYYY-MM-DD)")
	record.Flags().Float64Var(&ev.MilkLitres, "litres", 0, "litres milked")
	record.Flags().StringVar(&ev.Notes, "notes", "", "notes")

	cmd.AddCommand(list, record)
	return cmd
}
