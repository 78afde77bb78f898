package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

// productRow is the subset of product fields shown in tables. The API
// returns much more; the SDK keeps payloads raw, so the CLI decodes
// only what it renders.
type productRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Status string `json:"status"`
	Vendor struct {
		StoreName string `json:"store_name"`
	} `json:"vendor"`
}

func printProductsTable(products []productRow) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tSLUG\tSTATUS\tVENDOR\n")
	for i := range products {
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			products[i].ID,
			truncate(products[i].Name, 40),
			products[i].Slug,
			products[i].Status,
			products[i].Vendor.StoreName,
		)
	}
	return tw.finish()
}

type vendorRow struct {
	ID        string `json:"id"`
	StoreName string `json:"store_name"`
	Slug      string `json:"slug"`
	City      string `json:"city"`
}

func printVendorsTable(vendors []vendorRow) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tSTORE\tSLUG\tCITY\n")
	for i := range vendors {
		tw.writef("%s\t%s\t%s\t%s\n",
			vendors[i].ID,
			truncate(vendors[i].StoreName, 40),
			vendors[i].Slug,
			vendors[i].City,
		)
	}
	return tw.finish()
}

type categoryRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func printCategoriesTable(categories []categoryRow) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tSLUG\n")
	for i := range categories {
		tw.writef("%s\t%s\t%s\n",
			categories[i].ID,
			truncate(categories[i].Name, 40),
			categories[i].Slug,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputRawJSON pretty-prints an already-encoded payload, e.g. an
// envelope's data field.
func outputRawJSON(raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}
	return outputJSON(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
