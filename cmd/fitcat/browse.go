package main

import (
	"github.com/spf13/cobra"

	"fitcatalog/pkg/bootstrap"
	"fitcatalog/pkg/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, err := bootstrap.NewService(ctx, bootstrap.ServiceOptions{Monitor: true})
		if err != nil {
			return err
		}
		defer svc.Close()

		svc.Browser.Start(ctx)
		return tui.Run(svc.Browser)
	},
}
