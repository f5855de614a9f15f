package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperr "github.com/newjenk/gridsystem/pkg/errors"
	"github.com/newjenk/gridsystem/pkg/grid"
	gio "github.com/newjenk/gridsystem/pkg/io"
)

// blockIssue is a validation issue located in a document.
type blockIssue struct {
	path  string // "blocks[0].innerBlocks[1]"
	block string
	issue grid.Issue
}

// validateCommand checks documents against the editor control domains.
func (c *CLI) validateCommand() *cobra.Command {
	var block string

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check attribute values against the editor controls",
		Long: `Validate reports attribute values the editor controls could not have
produced (a size of 13, an order of "middle", a misspelled key). Rendering
accepts such values; validate and --strict reject them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total := 0
			for _, path := range args {
				doc, err := loadDocument(path, block, string(gio.FormatJSON))
				if err != nil {
					return err
				}
				issues := validateDocument(doc)
				total += len(issues)
				if len(issues) == 0 {
					printSuccess("%s: %d blocks valid", path, doc.Count())
					continue
				}
				printError("%s: %d issues", path, len(issues))
				for _, bi := range issues {
					printDetail("%s (%s) %s", bi.path, bi.block, bi.issue.Error())
				}
			}
			if total > 0 {
				return apperr.New(apperr.ErrCodeInvalidAttribute, "%d validation issues", total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&block, "block", "b", "", "block kind for bare attributes")
	return cmd
}

// validateDocument validates every block in pre-order.
func validateDocument(doc *gio.Document) []blockIssue {
	var out []blockIssue
	var walk func(blocks []gio.Block, prefix string)
	walk = func(blocks []gio.Block, prefix string) {
		for i, b := range blocks {
			path := fmt.Sprintf("%s[%d]", prefix, i)
			if k, err := b.Kind(); err == nil {
				for _, is := range grid.Validate(k, b.Attributes) {
					out = append(out, blockIssue{path: path, block: k.Name, issue: is})
				}
			}
			walk(b.InnerBlocks, path+".innerBlocks")
		}
	}
	walk(doc.Blocks, "blocks")
	return out
}
