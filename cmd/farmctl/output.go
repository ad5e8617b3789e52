package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// printRaw writes an API payload in the selected format. An empty payload
// prints nothing.
func (a *app) printRaw(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return a.print(v)
}

func (a *app) print(v any) error {
	return writeValue(a.stdout, a.format, v)
}

func writeValue(w io.Writer, format string, v any) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func argInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}
	return n, nil
}

func addPageFlags(cmd *cobra.Command, p *domain.Page) {
	cmd.Flags().IntVar(&p.Limit, "limit", domain.DefaultPageLimit, "page size")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "rows to skip")
}

// decimalValue lets a money flag parse straight into a decimal.Decimal.
type decimalValue struct {
	d *decimal.Decimal
}

func (v decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*v.d = d
	return nil
}

func (decimalValue) Type() string { return "decimal" }

func decimalFlag(cmd *cobra.Command, d *decimal.Decimal, name, usage string) {
	cmd.Flags().Var(decimalValue{d: d}, name, usage)
}

// printing wraps a call that returns an API payload into a cobra RunE.
func (a *app) printing(fn func(cmd *cobra.Command, args []string) (json.RawMessage, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		raw, err := fn(cmd, args)
		if err != nil {
			return err
		}
		return a.printRaw(raw)
	}
}

// byID is printing for commands whose single argument is a numeric id.
func (a *app) byID(fn func(cmd *cobra.Command, id int) (json.RawMessage, error)) func(*cobra.Command, []string) error {
	return a.printing(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
		id, err := argInt("id", args[0])
		if err != nil {
			return nil, err
		}
		return fn(cmd, id)
	})
}
