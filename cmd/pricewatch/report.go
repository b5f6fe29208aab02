// ABOUTME: report subcommand posts a single item to the Slack webhook
// ABOUTME: Prints the report id and the KST timestamp on success

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pricewatch-api/core/domain"
)

type reportOptions struct {
	name  string
	mall  string
	price int
	link  string
}

func newReportCmd(root *rootOptions, build appFactory) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report an item to Slack",
		Example: `  pricewatch report --link https://smartstore.naver.com/item/1 \
    --name "에어팟 프로" --mall "스마트스토어" --price 129000`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			a, err := build(root, c.ErrOrStderr())
			if err != nil {
				return err
			}

			receipt, err := a.report.Report(c.Context(), &domain.Report{
				Name:  opts.name,
				Mall:  opts.mall,
				Price: opts.price,
				Link:  opts.link,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "reported %s at %s\n", receipt.ID, receipt.ReportedAt)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.link, "link", "", "Product page URL (required)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Product name")
	cmd.Flags().StringVar(&opts.mall, "mall", "", "Mall name")
	cmd.Flags().IntVar(&opts.price, "price", 0, "Price in won")
	_ = cmd.MarkFlagRequired("link")

	return cmd
}
