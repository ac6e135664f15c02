package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/propbin/hash"
)

func (a *app) hashCmd() *cobra.Command {
	var path bool
	cmd := &cobra.Command{
		Use:   "hash <name>...",
		Short: "Print the wire hash of names (FNV-1a) or paths (XXH64)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				var err error
				if path {
					_, err = fmt.Fprintf(a.stdout, "0x%016x  %s\n", hash.Path(s), s)
				} else {
					_, err = fmt.Fprintf(a.stdout, "0x%08x  %s\n", hash.Name(s), s)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&path, "path", "p", false, "hash as an asset path (64-bit)")
	return cmd
}
