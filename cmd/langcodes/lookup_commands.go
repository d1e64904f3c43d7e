package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"langcodes/internal/language"
	"langcodes/internal/logging"
)

type checkResult struct {
	Code      string `json:"code"`
	Supported bool   `json:"supported"`
	Name      string `json:"name"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check CODE...",
		Short: "Report whether codes or speech-to-text tags are supported",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]checkResult, 0, len(args))
			unsupported := 0
			for _, code := range args {
				supported := language.IsSupported(code)
				if !supported {
					unsupported++
					ctx.log().Debug("code not in tables", logging.String(logging.FieldCode, code))
				}
				results = append(results, checkResult{Code: code, Supported: supported, Name: language.Name(code)})
			}

			format := ctx.outputFormat()
			if format == "json" {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				colorize := ctx.colorize(cmd.OutOrStdout())
				rows := make([][]string, 0, len(results))
				for _, r := range results {
					rows = append(rows, []string{r.Code, supportedLabel(r.Supported, colorize), r.Name})
				}
				writeRows(cmd, format, []string{"Code", "Status", "Name"}, rows)
			}

			if strict && unsupported > 0 {
				return fmt.Errorf("%d of %d codes unsupported", unsupported, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any code is unsupported")
	return cmd
}

func newNameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "name CODE...",
		Short: "Resolve codes or speech-to-text tags to language names",
		Long:  "Resolve codes or speech-to-text tags to language names. Unknown input is echoed unchanged.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			type nameResult struct {
				Code string `json:"code"`
				Name string `json:"name"`
			}
			results := make([]nameResult, 0, len(args))
			for _, code := range args {
				results = append(results, nameResult{Code: code, Name: language.Name(code)})
			}
			if ctx.outputFormat() == "json" {
				return writeJSON(cmd, results)
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintln(out, r.Name)
			}
			return nil
		},
	}
}

func newCodeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "code NAME",
		Short: "Look up the standard code for a language name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			code, ok := language.CodeForName(name)
			if !ok {
				if suggestions := language.SuggestNames(name, 3); len(suggestions) > 0 {
					return fmt.Errorf("unknown language name %q (did you mean %s?)", name, strings.Join(suggestions, ", "))
				}
				return fmt.Errorf("unknown language name %q", name)
			}
			if ctx.outputFormat() == "json" {
				return writeJSON(cmd, map[string]string{"name": language.Name(code), "code": code})
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}
}

func newTagCommand(ctx *commandContext) *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "tag CODE",
		Short: "Convert a standard code to its speech-to-text tag",
		Long:  "Convert a standard code to its speech-to-text tag, or with --reverse a tag to its standard code.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			var (
				output string
				ok     bool
			)
			if reverse {
				output, ok = language.StandardCode(input)
			} else {
				output, ok = language.Tag(input)
			}
			if !ok {
				switch {
				case reverse:
					return fmt.Errorf("unknown speech-to-text tag %q", input)
				case language.IsSupported(input):
					return fmt.Errorf("%s (%s) has no speech-to-text tag", language.Name(input), input)
				default:
					return fmt.Errorf("unknown language code %q", input)
				}
			}
			if ctx.outputFormat() == "json" {
				return writeJSON(cmd, map[string]string{"input": input, "output": output})
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Convert a speech-to-text tag to a standard code")
	return cmd
}

var errNoneCanonical = errors.New("no input could be normalized")

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize INPUT...",
		Short: "Map BCP 47 tags, locales, or loose codes onto standard codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			type normalizeResult struct {
				Input string `json:"input"`
				Code  string `json:"code,omitempty"`
				Label string `json:"label"`
				OK    bool   `json:"ok"`
			}
			results := make([]normalizeResult, 0, len(args))
			matched := 0
			for _, input := range args {
				code, ok := language.Canonicalize(input)
				if ok {
					matched++
				}
				label := language.Label(input)
				if ok {
					label = language.Label(code)
				}
				results = append(results, normalizeResult{Input: input, Code: code, Label: label, OK: ok})
			}

			if ctx.outputFormat() == "json" {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				for _, r := range results {
					code := r.Code
					if !r.OK {
						code = "unsupported"
					}
					fmt.Fprintf(out, "%s\t%s\t%s\n", r.Input, code, r.Label)
				}
			}
			if matched == 0 {
				return errNoneCanonical
			}
			return nil
		},
	}
}
