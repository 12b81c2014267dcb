package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"capbrowse/internal/record"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the full JSON of a record",
		Long:  "Print the serialized JSON of the first record whose id matches, including the resolved _audio_url.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			id := args[0]
			n, ok := cat.Find(id)
			if !ok {
				return fmt.Errorf("record %q not found", id)
			}

			out := cmd.OutOrStdout()
			key := strings.TrimSpace(field)
			if key == "" {
				fmt.Fprintln(out, record.Serialize(n))
				return nil
			}
			fmt.Fprintln(out, fieldText(n, key))
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", "", "Print only this field's text")
	return cmd
}

func fieldText(n *record.Normalized, key string) string {
	if key == record.KeyResolvedAudio {
		return n.AudioURL
	}
	return n.Text(key)
}
