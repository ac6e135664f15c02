package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	var assets bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered records and variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			recs := a.reg.Records()
			if assets {
				recs = a.reg.Assets()
			}
			for _, rd := range recs {
				kind := "record"
				if rd.IsAsset {
					kind = "asset"
				}
				fmt.Fprintf(tw, "%s\t0x%08x\t%s\t%d fields\n", kind, rd.Hash, rd.Name, len(rd.Fields))
			}
			if !assets {
				for _, v := range a.reg.Variants() {
					fmt.Fprintf(tw, "variant\t-\t%s\t%d cases\n", v.Name, len(v.Cases))
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&assets, "assets", false, "only list asset records")
	return cmd
}
