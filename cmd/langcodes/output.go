package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
)

// writeRows renders rows as a rounded table or as tab-separated lines.
func writeRows(cmd *cobra.Command, format string, headers []string, rows [][]string) {
	out := cmd.OutOrStdout()
	if format == "table" {
		fmt.Fprintln(out, renderTable(headers, rows))
		return
	}
	for _, row := range rows {
		fmt.Fprintln(out, strings.Join(row, "\t"))
	}
}

func (c *commandContext) colorize(writer io.Writer) bool {
	switch c.configValue().Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return shouldColorize(writer)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func paint(value, color string, enabled bool) string {
	if !enabled || color == "" {
		return value
	}
	return color + value + ansiReset
}

func supportedLabel(supported, colorize bool) string {
	if supported {
		return paint("supported", ansiGreen, colorize)
	}
	return paint("unsupported", ansiRed, colorize)
}
