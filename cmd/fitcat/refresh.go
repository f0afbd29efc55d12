package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fitcatalog/pkg/bootstrap"
)

var refreshForce bool

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the remote catalog and update the local snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, err := bootstrap.NewService(ctx, bootstrap.ServiceOptions{})
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := svc.Browser.Refresh(ctx, refreshForce); err != nil {
			return err
		}

		snap := svc.Browser.Snapshot()
		fmt.Printf("state: %s, %d exercises", snap.State, len(snap.Exercises))
		if !snap.LastSync.IsZero() {
			fmt.Printf(", synced %s", snap.LastSync.Format("2006-01-02 15:04:05"))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	refreshCmd.Flags().BoolVar(&refreshForce, "force", false, "fetch even when the connectivity probe reports offline")
}
