// ABOUTME: search subcommand prints aggregated shopping results for a query
// ABOUTME: Renders a price table or the same JSON document the API returns

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pricewatch-api/api/dto/mappers"
	"pricewatch-api/core/domain"
)

type searchOptions struct {
	threshold string
	json      bool
	limit     int
}

func newSearchCmd(root *rootOptions, build appFactory) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search prices for a product",
		Example: `  # Items at or above 100,000 won are marked "up"
  pricewatch search "에어팟 프로" --threshold 100000

  # Emit the raw JSON document
  pricewatch search "에어팟 프로" --threshold 100000 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			a, err := build(root, c.ErrOrStderr())
			if err != nil {
				return err
			}

			result, err := a.search.Search(c.Context(), args[0], opts.threshold)
			if err != nil {
				return err
			}

			if opts.json {
				enc := json.NewEncoder(c.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(mappers.ToSearchResponse(result))
			}
			return writeTable(c.OutOrStdout(), result, opts.limit, a.formatPrice)
		},
	}

	cmd.Flags().StringVarP(&opts.threshold, "threshold", "t", "", "Price threshold in won (required)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the full result as JSON")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 20, "Rows to print (0 prints every item)")
	_ = cmd.MarkFlagRequired("threshold")

	return cmd
}

func writeTable(w io.Writer, result *domain.SearchResult, limit int, formatPrice func(int) string) error {
	fmt.Fprintf(w, "%s: %d total, %d retrieved\n", result.Query, result.Total, result.Retrieved())
	if result.IsPartial() {
		fmt.Fprintf(w, "skipped pages: %v\n", result.DroppedPages)
	}

	items := result.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tPRICE\tMALL\tTYPE\tNAME")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", item.Position, formatPrice(item.Price), item.Mall, item.ProductType, item.Name)
	}
	return tw.Flush()
}
