package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/newjenk/gridsystem/pkg/grid"
)

// explainCommand creates the explain command.
func (c *CLI) explainCommand() *cobra.Command {
	var (
		src     blockSource
		profile string
		reasons bool
	)

	cmd := &cobra.Command{
		Use:   "explain <block> [key=value...]",
		Short: "Show how attributes cascade across breakpoints",
		Long: `Explain resolves a block's attributes at every breakpoint and lists the
classes each breakpoint contributes. Set values are green, inherited values
gray, and hidden breakpoints struck through.`,
		Example: `  gridsystem explain column allSize=6 smNone=true mdNone=false
  gridsystem explain --file page.json --index 2`,
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
			return writeExplain(cmd.OutOrStdout(), k, attrs, p, reasons)
		},
	}

	cmd.Flags().StringVar(&src.file, "file", "", "read the block from a document")
	cmd.Flags().IntVar(&src.index, "index", 0, "block position in the document (pre-order)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "emission profile: canonical, legacy")
	cmd.Flags().BoolVar(&reasons, "reasons", false, "list every token with the reason it was emitted")

	return cmd
}

// profileOr parses flag, falling back to the configured profile.
func (c *CLI) profileOr(flag string) (grid.Profile, error) {
	if flag == "" {
		return c.Config.Profile, nil
	}
	return grid.ParseProfile(flag)
}

// writeExplain prints the cascade table of one block.
func writeExplain(w io.Writer, k *grid.Kind, attrs grid.Attributes, p grid.Profile, reasons bool) error {
	res := grid.Resolve(k, attrs)
	tr := grid.Emit(k, attrs, p)

	headers := []string{"Breakpoint", "Width"}
	for _, prop := range k.Properties {
		headers = append(headers, prop.Name)
	}
	if k.Visibility {
		headers = append(headers, "visible")
	}
	headers = append(headers, "classes")

	rows := make([][]string, 0, grid.NumBreakpoints)
	for _, bp := range grid.Breakpoints() {
		row := []string{bp.String(), grid.RangeOf(bp).Span()}
		for _, prop := range k.Properties {
			row = append(row, cell(res, bp, prop.Name))
		}
		if k.Visibility {
			if res.Hidden[bp] {
				row = append(row, styleHidden.Render("no"))
			} else {
				row = append(row, "yes")
			}
		}
		var classes []string
		for _, tok := range tr.At(bp) {
			classes = append(classes, tok.Class)
		}
		row = append(row, classList(classes))
		rows = append(rows, row)
	}

	title := fmt.Sprintf("%s (%s profile)", k.BlockName(), p)
	if _, err := fmt.Fprintln(w, StyleTitle.Render(title)); err != nil {
		return err
	}
	t := newTable(headers...).Rows(rows...)
	fmt.Fprintln(w, t.Render())

	if static := staticClasses(tr); static != "" {
		fmt.Fprintln(w, StyleDim.Render("static: ")+StyleClass.Render(static))
	}
	if _, ok := k.Property("size"); ok {
		for _, bp := range grid.Breakpoints() {
			if help := grid.SizeHelp(res, bp); help != "" {
				fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("%s: %s", bp, help)))
			}
		}
	}

	if reasons {
		fmt.Fprintln(w)
		for _, tok := range tr.Tokens {
			fmt.Fprintf(w, "  %-24s %-3s %-11s %s\n", StyleClass.Render(tok.Class), tok.Breakpoint, tok.Property, StyleDim.Render(tok.Reason.String()))
		}
	}

	_, err := fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(tr.String()))
	return err
}

// cell formats the effective value with its provenance.
func cell(res grid.Resolution, bp grid.Breakpoint, prop string) string {
	e, ok := res.Value(bp, prop)
	if !ok {
		return ""
	}
	label := e.Token
	if res.Hidden[bp] {
		return styleHidden.Render(label)
	}
	if e.Explicit {
		return styleSet.Render(label)
	}
	if e.Default {
		return styleInherited.Render(label + " (default)")
	}
	return styleInherited.Render(label + " ← " + e.From.String())
}

func staticClasses(tr grid.Trace) string {
	var out []string
	for _, tok := range tr.Tokens {
		if tok.Reason == grid.ReasonStatic {
			out = append(out, tok.Class)
		}
	}
	return strings.Join(out, " ")
}
