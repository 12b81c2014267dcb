package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"capbrowse/internal/catalog"
	"capbrowse/internal/config"
	"capbrowse/internal/logging"
	"capbrowse/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser page locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.ApplyOverrides(config.Overrides{Bind: bind}); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cat := catalog.Open(runCtx, cfg, nil, logger)
			if err := cat.Err(); err != nil {
				logger.Error("sample load failed; serving empty list", logging.Error(err))
			}

			srv, err := server.New(cfg, cat, logger)
			if err != nil {
				return err
			}
			if err := srv.Start(runCtx); err != nil {
				return err
			}
			defer srv.Stop()

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range banner("capbrowse", "sample browser", colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, newNotice("serving", toneMatch, "http://"+srv.Addr()+"/").render(colorize))
			if err := cat.Err(); err != nil {
				fmt.Fprintln(out, newNotice("samples", toneFailure, err.Error()).render(colorize))
			} else {
				fmt.Fprintln(out, newNotice("samples", toneNeutral, fmt.Sprintf("%d records from %s", cat.Len(), cat.Source())).render(colorize))
			}

			<-runCtx.Done()
			if err := cmd.Context().Err(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (overrides server.bind)")
	return cmd
}
