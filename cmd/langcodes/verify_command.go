package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"langcodes/internal/language"
	"langcodes/internal/logging"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var audit bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the language tables for consistency",
		Long: "Check the language tables for consistency. With --audit, also compare\n" +
			"table names against CLDR English display names (informational only).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewComponentLogger(ctx.log(), "verify")
			if err := language.Verify(); err != nil {
				logger.Error("language tables inconsistent", logging.Error(err))
				return fmt.Errorf("verify tables: %w", err)
			}

			format := ctx.outputFormat()
			codes, tags := len(language.SortedCodes()), len(language.SortedTags())

			var mismatches []language.Mismatch
			if audit {
				mismatches = language.Audit()
				if len(mismatches) > 0 {
					logger.Warn("table names differ from CLDR",
						logging.Int(logging.FieldCount, len(mismatches)),
						logging.String(logging.FieldAlert, "audit"),
					)
				}
			}

			if format == "json" {
				payload := struct {
					Consistent bool                `json:"consistent"`
					Codes      int                 `json:"codes"`
					Tags       int                 `json:"tags"`
					Mismatches []language.Mismatch `json:"mismatches,omitempty"`
				}{true, codes, tags, mismatches}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Language tables consistent (%d codes, %d speech-to-text tags)\n", codes, tags)
			if !audit {
				return nil
			}
			if len(mismatches) == 0 {
				fmt.Fprintln(out, "All names match CLDR")
				return nil
			}
			rows := make([][]string, 0, len(mismatches))
			for _, m := range mismatches {
				cldr := m.CLDR
				if cldr == "" {
					cldr = "(none)"
				}
				rows = append(rows, []string{m.Code, m.Table, cldr})
			}
			writeRows(cmd, format, []string{"Code", "Table", "CLDR"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&audit, "audit", false, "Compare names with CLDR display names")
	return cmd
}
