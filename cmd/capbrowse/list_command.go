package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"capbrowse/internal/api"
	"capbrowse/internal/browse"
	"capbrowse/internal/config"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var query string
	var field string
	var page int
	var pageSize int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of matching records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			state, err := initialState(cfg, field)
			if err != nil {
				return err
			}
			state = state.WithQuery(query)
			if cmd.Flags().Changed("page-size") {
				state = state.WithPageSize(pageSize)
			}
			state = state.GoTo(page)

			cat, err := ctx.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			view := browse.Apply(cat.Records(), state)

			if asJSON {
				return writeJSON(cmd, api.FromView(view))
			}
			out := cmd.OutOrStdout()
			writeView(out, view, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive substring to search for")
	cmd.Flags().StringVarP(&field, "field", "f", "", "Field to search: all, id, final_caption, asr, final_caption_asr, json")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number (clamped into range)")
	cmd.Flags().IntVarP(&pageSize, "page-size", "n", 0, "Records per page (defaults to browse.page_size)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// initialState builds the startup state from config, with field overriding
// browse.default_field when set.
func initialState(cfg *config.Config, field string) (browse.State, error) {
	state := browse.NewState(cfg.Browse.PageSize)
	name := cfg.Browse.DefaultField
	if field != "" {
		name = field
	}
	selected, err := browse.ParseField(name)
	if err != nil {
		return state, fmt.Errorf("invalid field: %w", err)
	}
	return state.WithField(selected), nil
}
