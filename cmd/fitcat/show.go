package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fitcatalog/pkg/bootstrap"
	"fitcatalog/pkg/catalog"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id or name>",
	Short: "Show one exercise in full",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, err := bootstrap.NewService(ctx, bootstrap.ServiceOptions{})
		if err != nil {
			return err
		}
		defer svc.Close()

		_ = svc.Browser.Refresh(ctx, false)
		exercises := svc.Browser.Snapshot().Exercises

		needle := strings.Join(args, " ")
		ex, ok := catalog.FindByID(exercises, needle)
		if !ok {
			key := strings.ToLower(strings.TrimSpace(needle))
			for _, candidate := range exercises {
				if candidate.Key() == key {
					ex, ok = candidate, true
					break
				}
			}
		}
		if !ok {
			return fmt.Errorf("no exercise matches %q", needle)
		}

		if showJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(ex)
		}

		fmt.Printf("%s (%s)\n", ex.Name, ex.ID)
		printField("Muscle", ex.Muscle)
		printField("Difficulty", string(ex.Difficulty))
		printField("Equipment", ex.Equipment)
		if ex.Calories > 0 {
			printField("Calories", fmt.Sprintf("%d kcal", ex.Calories))
		}
		printField("Video", ex.Video)
		printField("Image", ex.Image)
		if ex.Overview != "" {
			fmt.Printf("\n%s\n", ex.Overview)
		}
		if len(ex.Steps) > 0 {
			fmt.Println("\nSteps:")
			for i, step := range ex.Steps {
				fmt.Printf("  %d. %s\n", i+1, step)
			}
		}
		if len(ex.Benefits) > 0 {
			fmt.Println("\nBenefits:")
			for _, benefit := range ex.Benefits {
				fmt.Printf("  - %s\n", benefit)
			}
		}
		return nil
	},
}

func printField(label, value string) {
	if value != "" {
		fmt.Printf("%-12s%s\n", label+":", value)
	}
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "emit JSON")
}
