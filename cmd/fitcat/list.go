package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fitcatalog/pkg/bootstrap"
	"fitcatalog/pkg/catalog"
)

var listFlags struct {
	query      string
	muscle     string
	equipment  string
	difficulty string
	page       int
	perPage    int
	asJSON     bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Search and list exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, err := bootstrap.NewService(ctx, bootstrap.ServiceOptions{})
		if err != nil {
			return err
		}
		defer svc.Close()

		// Offline this is a no-op and cached or bundled data is shown.
		_ = svc.Browser.Refresh(ctx, false)

		q := catalog.Query{
			Text:      listFlags.query,
			Muscle:    listFlags.muscle,
			Equipment: listFlags.equipment,
			Page:      listFlags.page,
			PerPage:   listFlags.perPage,
		}
		if listFlags.difficulty != "" {
			q.Difficulty = catalog.ParseDifficulty(listFlags.difficulty)
		}

		page := catalog.Apply(svc.Browser.Snapshot().Exercises, q)

		if listFlags.asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(page)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMUSCLE\tDIFFICULTY\tEQUIPMENT")
		for _, ex := range page.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", ex.ID, ex.Name, ex.Muscle, ex.Difficulty, ex.Equipment)
		}
		w.Flush()

		fmt.Printf("\npage %d/%d, %d total\n", page.Page, page.TotalPages, page.Total)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFlags.query, "query", "q", "", "free text search")
	listCmd.Flags().StringVar(&listFlags.muscle, "muscle", "", "filter by muscle group")
	listCmd.Flags().StringVar(&listFlags.equipment, "equipment", "", "filter by equipment")
	listCmd.Flags().StringVar(&listFlags.difficulty, "difficulty", "", "filter by difficulty (beginner|intermediate|advanced)")
	listCmd.Flags().IntVar(&listFlags.page, "page", 1, "page number")
	listCmd.Flags().IntVar(&listFlags.perPage, "per-page", catalog.DefaultPerPage, "results per page")
	listCmd.Flags().BoolVar(&listFlags.asJSON, "json", false, "emit JSON")
}
