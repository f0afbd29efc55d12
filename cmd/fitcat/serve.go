package main

import (
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fitcatalog/pkg/bootstrap"
	"fitcatalog/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, err := bootstrap.NewService(ctx, bootstrap.ServiceOptions{Monitor: true})
		if err != nil {
			return err
		}
		defer svc.Close()

		svc.Browser.Start(ctx)

		srv := server.New(svc.Browser)
		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe(svc.Config.ListenAddr)
		}()

		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
	},
}
