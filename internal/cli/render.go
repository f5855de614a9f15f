package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/newjenk/gridsystem/internal/watch"
	"github.com/newjenk/gridsystem/pkg/grid"
	gio "github.com/newjenk/gridsystem/pkg/io"
	"github.com/newjenk/gridsystem/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	block       string // kind for bare attribute records
	format      string // text, json or html
	profile     string // canonical or legacy; empty uses the config
	output      string // output file; empty writes stdout
	inputFormat string // decoder for stdin
	strict      bool
	watch       bool
	copy        bool
	noCache     bool
	refresh     bool
	concurrency int
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format:      pipeline.DefaultFormat,
		inputFormat: string(gio.FormatJSON),
		concurrency: pipeline.DefaultConcurrency,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the grid classes of a block document",
		Long: `Render reads a document of blocks (json, yaml or toml, chosen by extension;
"-" reads stdin) and prints the class string each block saves.

A file holding only an attribute record needs --block to name its kind.`,
		Example: `  gridsystem render page.json
  gridsystem render column.yaml --block column --format html
  echo '{"allSize":"6","smNone":true,"mdNone":false}' | gridsystem render - --block column`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.block, "block", "b", "", "block kind for bare attributes: "+strings.Join(grid.KindNames(), ", "))
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, html")
	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "emission profile: canonical, legacy (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", opts.inputFormat, "stdin format: json, yaml, toml")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject attributes outside the editor controls")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render when the file changes")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the output to the clipboard")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results (still updates the cache)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", opts.concurrency, "blocks rendered in parallel")

	_ = cmd.RegisterFlagCompletionFunc("block", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return grid.KindNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{pipeline.FormatText, pipeline.FormatJSON, pipeline.FormatHTML}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("profile", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{grid.Canonical.String(), grid.Legacy.String()}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// pipelineOptions merges flags over the config.
func (c *CLI) pipelineOptions(opts renderOpts) (pipeline.Options, error) {
	po := pipeline.Options{
		Profile:     c.Config.Profile,
		Format:      opts.format,
		Strict:      opts.strict,
		Refresh:     opts.refresh,
		Concurrency: opts.concurrency,
		Logger:      c.Logger,
	}
	if opts.profile != "" {
		p, err := grid.ParseProfile(opts.profile)
		if err != nil {
			return po, err
		}
		po.Profile = p
	}
	return po, po.Validate()
}

func (c *CLI) runRender(ctx context.Context, stdout io.Writer, path string, opts renderOpts) error {
	if opts.watch && path == stdinPath {
		return fmt.Errorf("--watch needs a file, not stdin")
	}
	po, err := c.pipelineOptions(opts)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	if err := c.renderOnce(ctx, stdout, runner, path, opts, po); err != nil {
		if !opts.watch {
			return err
		}
		printError("%v", err)
	}
	if !opts.watch {
		return nil
	}

	w, err := watch.New([]string{path}, watch.WithLogger(loggerFromContext(ctx)))
	if err != nil {
		return err
	}
	printInfo("Watching %s (ctrl+c to stop)", path)
	return w.Run(ctx, func(string) {
		if err := c.renderOnce(ctx, stdout, runner, path, opts, po); err != nil {
			printError("%v", err)
		}
	})
}

// renderOnce loads, renders and writes one pass.
func (c *CLI) renderOnce(ctx context.Context, stdout io.Writer, runner *pipeline.Runner, path string, opts renderOpts, po pipeline.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := loadDocument(path, opts.block, opts.inputFormat)
	if err != nil {
		return err
	}
	logger.Debug("document loaded", "path", path, "blocks", doc.Count())

	out, cached, err := runner.Artifact(ctx, doc, po)
	if err != nil {
		return err
	}

	if err := writeOutput(opts.output, out, stdout); err != nil {
		return err
	}
	if opts.copy {
		if err := clipboard.WriteAll(string(out)); err != nil {
			printWarning("clipboard unavailable: %v", err)
		} else {
			printDetail("copied to clipboard")
		}
	}

	prog.done(fmt.Sprintf("Rendered %d blocks", doc.Count()))
	if opts.output != "" {
		printSuccess("Rendered %s", filepath.Base(path))
		printFile(opts.output)
		printStats(doc.Count(), cached)
	}
	return nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
