package main

import (
	"bufio"

	"github.com/spf13/cobra"

	"capbrowse/internal/browse"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively search and page through records",
		Long:  "Start an interactive session on stdin. Plain text sets the query; lines starting with ':' are commands (:help lists them).",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			state, err := initialState(cfg, field)
			if err != nil {
				return err
			}
			cat, err := ctx.openCatalog(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			in := cmd.InOrStdin()
			interactive := isTerminal(in)
			colorize := shouldColorize(out)

			session := newBrowseSession(cat.Records(), state, browse.NewDebouncer(cfg.Debounce()), out, colorize)
			defer session.finish()
			session.start()

			scanner := bufio.NewScanner(in)
			for {
				if interactive {
					session.prompt()
				}
				if !scanner.Scan() {
					break
				}
				if session.handle(scanner.Text()) {
					return nil
				}
				if err := cmd.Context().Err(); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&field, "field", "f", "", "Initial search field")
	return cmd
}
