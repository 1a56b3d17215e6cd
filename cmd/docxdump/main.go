// Command docxdump reads a .docx file and prints the resulting Document as
// indented JSON, for inspecting how the style resolver and paragraph reader
// interpreted a given archive. It is developer tooling, not part of the
// library core: the core never imports it and never touches a CLI flag.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yonatan-v/minidocx"
)

var prettyStyles bool

var rootCmd = &cobra.Command{
	Use:   "docxdump <file.docx>",
	Short: "Dump the parsed structure of a .docx file as JSON",
	Long: `docxdump opens a WordprocessingML (.docx) archive, resolves its style
graph, and prints the resulting paragraphs, runs, footnotes, and endnotes as
indented JSON.

A file that cannot be read or parsed is not an error from docxdump's point
of view: minidocx.ReadDocument returns an empty Document, and docxdump
prints that empty Document rather than exiting non-zero, matching the
library's own "never raise out of the public API" contract.

Example:

  docxdump report.docx
  docxdump --colors report.docx`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.Flags().BoolVar(&prettyStyles, "colors", false, "add per-paragraph runs with Color fields as #RRGGBB alongside the numeric channels")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]

	doc := minidocx.ReadDocument(path)

	var out interface{} = doc
	if prettyStyles {
		out = newColorizedView(doc)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}
