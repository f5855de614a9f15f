package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/newjenk/gridsystem/pkg/grid"
	"github.com/newjenk/gridsystem/pkg/render/dot"
)

const (
	graphDOT = "dot"
	graphSVG = "svg"
	graphPNG = "png"
)

// graphCommand draws a block's cascade with Graphviz.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		src      blockSource
		profile  string
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph <block> [key=value...]",
		Short: "Draw the breakpoint cascade as a diagram",
		Example: `  gridsystem graph column allSize=6 smNone=true mdNone=false | dot -Tsvg > cascade.svg
  gridsystem graph column allSize=6 mdOffset=2 -f svg -o cascade.svg --detailed`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			return completeBlockNames(args), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			k, attrs, err := src.load(args)
			if err != nil {
				return err
			}
			p, err := c.profileOr(profile)
			if err != nil {
				return err
			}
			return runGraph(cmd.Context(), cmd.OutOrStdout(), k, attrs, p, format, output, detailed)
		},
	}

	cmd.Flags().StringVar(&src.file, "file", "", "read the block from a document")
	cmd.Flags().IntVar(&src.index, "index", 0, "block position in the document (pre-order)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "emission profile: canonical, legacy")
	cmd.Flags().StringVarP(&format, "format", "f", graphDOT, "output format: dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout; required for png)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show pixel ranges and value provenance")

	return cmd
}

func runGraph(ctx context.Context, stdout io.Writer, k *grid.Kind, attrs grid.Attributes, p grid.Profile, format, output string, detailed bool) error {
	src := dot.ToDOT(grid.Resolve(k, attrs), grid.Emit(k, attrs, p), dot.Options{Detailed: detailed})

	var data []byte
	switch format {
	case graphDOT:
		data = []byte(src)
	case graphSVG, graphPNG:
		if format == graphPNG && output == "" {
			return fmt.Errorf("png output needs --output")
		}
		spin := newSpinner(ctx, statusOut, "Laying out diagram...")
		spin.Start()
		var err error
		if format == graphSVG {
			data, err = dot.RenderSVG(ctx, src)
		} else {
			data, err = dot.RenderPNG(ctx, src)
		}
		spin.Stop()
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg' or 'png')", format)
	}

	if err := writeOutput(output, data, stdout); err != nil {
		return err
	}
	if output != "" {
		printSuccess("Drew %s cascade", k.Name)
		printFile(output)
	}
	return nil
}
