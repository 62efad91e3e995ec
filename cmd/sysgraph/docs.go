package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docFormats are the outputs gen-docs can write.
var docFormats = []string{"man", "markdown"}

// newDocsCmd writes man pages or markdown for the whole command tree.
func newDocsCmd() *cobra.Command {
	var dir, format string

	cmd := &cobra.Command{
		Use:    "gen-docs",
		Short:  "Write sysgraph reference pages",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(docFormats, format) {
				return fmt.Errorf("--format %q: want one of %v", format, docFormats)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("docs dir: %w", err)
			}

			root := cmd.Root()
			root.DisableAutoGenTag = true
			if format == "markdown" {
				return doc.GenMarkdownTree(root, dir)
			}
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   "SYSGRAPH",
				Section: "1",
				Manual:  "sysgraph manual",
				Source:  "sysgraph " + version,
			}, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "docs", "directory the pages are written to")
	cmd.Flags().StringVar(&format, "format", "man", "page format: man or markdown")
	return cmd
}
