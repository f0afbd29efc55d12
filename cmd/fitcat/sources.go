package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fitcatalog/pkg/source"

	_ "fitcatalog/pkg/infrastructure/database"
	_ "fitcatalog/pkg/infrastructure/rest"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List available remote source backends",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, m := range source.Manifests() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.Name, m.Description)
		}
		w.Flush()
	},
}
