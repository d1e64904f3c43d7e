package main

import (
	"github.com/spf13/cobra"

	"langcodes/internal/language"
	"langcodes/internal/logging"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var sttOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every language in the tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := language.Entries()
			if sttOnly {
				filtered := entries[:0]
				for _, e := range entries {
					if e.Tag != "" {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}
			ctx.log().Debug("listing languages",
				logging.Int(logging.FieldCount, len(entries)),
				logging.Bool("stt_only", sttOnly),
			)

			format := ctx.outputFormat()
			if format == "json" {
				return writeJSON(cmd, entries)
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				tag := e.Tag
				if tag == "" && format == "table" {
					tag = "-"
				}
				rows = append(rows, []string{e.Code, e.Name, tag})
			}
			writeRows(cmd, format, []string{"Code", "Name", "STT Tag"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sttOnly, "stt-only", false, "Only list languages the speech-to-text engine can tag")
	return cmd
}
