package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"langcodes/internal/language"
	"langcodes/internal/logging"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [TEXT...]",
		Short: "Detect the language of text",
		Long:  "Detect the language of text given as arguments, or read from stdin when no arguments are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}

			d, ok := language.Detect(text)
			if !ok {
				return errors.New("could not detect a language")
			}
			ctx.log().Debug("language detected",
				logging.String(logging.FieldCode, d.Code),
				logging.Float64("confidence", d.Confidence),
				logging.Bool("reliable", d.Reliable),
			)

			thresholds := ctx.configValue().Detect
			if d.Confidence < thresholds.MinConfidence {
				return fmt.Errorf("detected %s with confidence %.2f, below detect.min_confidence %.2f", d.Code, d.Confidence, thresholds.MinConfidence)
			}
			if thresholds.RequireReliable && !d.Reliable {
				return fmt.Errorf("detected %s but the result is unreliable (detect.require_reliable is set)", d.Code)
			}

			format := ctx.outputFormat()
			if format == "json" {
				return writeJSON(cmd, d)
			}
			confidence := strconv.FormatFloat(d.Confidence, 'f', 2, 64)
			row := []string{d.Code, d.Name, confidence, yesNo(d.Reliable), yesNo(d.Supported)}
			writeRows(cmd, format, []string{"Code", "Name", "Confidence", "Reliable", "Supported"}, [][]string{row})
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
