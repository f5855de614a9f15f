package cli

import (
	"os"

	"github.com/spf13/cobra"

	gio "github.com/newjenk/gridsystem/pkg/io"
)

// convertCommand rewrites a document in another format.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		block  string
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Rewrite a block document as json, yaml or toml",
		Long: `Convert normalizes a document: bare attribute records and single blocks
become a blocks list, and the result is written in the requested format.
With --output the format defaults to the output file's extension.`,
		Example: `  gridsystem convert page.yaml -o page.json
  gridsystem convert column.json --block column --to toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0], block, string(gio.FormatJSON))
			if err != nil {
				return err
			}

			if output != "" && to == "" {
				if err := gio.Export(doc, output); err != nil {
					return err
				}
				printSuccess("Converted %d blocks", doc.Count())
				printFile(output)
				return nil
			}

			if to == "" {
				to = string(gio.FormatJSON)
			}
			format, err := gio.ParseFormat(to)
			if err != nil {
				return err
			}
			if output == "" {
				return gio.Write(cmd.OutOrStdout(), doc, format)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := gio.Write(f, doc, format); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			printSuccess("Converted %d blocks", doc.Count())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&block, "block", "b", "", "block kind for bare attributes")
	cmd.Flags().StringVarP(&to, "to", "t", "", "output format: json, yaml, toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
