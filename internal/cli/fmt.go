package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/turadg/jsdocfmt/internal/logging"
	"github.com/turadg/jsdocfmt/internal/ui"
	"github.com/turadg/jsdocfmt/pkg/config"
	"github.com/turadg/jsdocfmt/pkg/jsdoc"
	"github.com/turadg/jsdocfmt/pkg/runner"
)

// ErrCheckFailed is returned when --check finds non-canonical blocks.
var ErrCheckFailed = errors.New("blocks are not in canonical form")

// document is the input shape: tokenized tag blocks, as produced by an
// external comment tokenizer. Body, when present, is the previously
// rendered text that --check compares against.
type document struct {
	Blocks []struct {
		Tags []jsdoc.Tag `yaml:"tags"`
		Body string      `yaml:"body"`
	} `yaml:"blocks"`
}

type fmtFlags struct {
	width     int
	gap       int
	align     bool
	fences    bool
	punctuate bool
	separate  bool
	showDesc  bool
	jobs      int
	check     bool
	output    string
}

func newFmtCommand(configPath, color *string) *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Format tokenized tag blocks",
		Long: `Format a YAML document of tokenized tag blocks and print the canonical
comment bodies. Reads stdin when no file is given.

Examples:
  jsdocfmt fmt blocks.yaml           # Format a document
  jsdocfmt fmt --width 100 < in.yml  # Override the print width
  jsdocfmt fmt --check blocks.yaml   # Verify bodies are already canonical`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, *configPath, *color, flags)
		},
	}

	cmd.Flags().IntVar(&flags.width, "width", 0, "print width (default: terminal width or 80)")
	cmd.Flags().IntVar(&flags.gap, "gap", 0, "spaces between tag columns")
	cmd.Flags().BoolVar(&flags.align, "align", false, "vertically align tag columns")
	cmd.Flags().BoolVar(&flags.fences, "prefer-fences", false, "keep untagged code blocks fenced")
	cmd.Flags().BoolVar(&flags.punctuate, "punctuate", false, "force trailing punctuation in descriptions")
	cmd.Flags().BoolVar(&flags.separate, "separate-groups", false, "trim trailing whitespace between tag groups")
	cmd.Flags().BoolVar(&flags.showDesc, "show-description-tag", false, "always render the @description title")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "parallel block workers (default: NumCPU)")
	cmd.Flags().BoolVar(&flags.check, "check", false, "exit non-zero when bodies are not canonical")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to file instead of stdout")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string, configPath, color string, flags *fmtFlags) error {
	logger := logging.Default()

	opts, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, opts, flags)

	doc, path, err := readDocument(args)
	if err != nil {
		return err
	}
	logger.Debug("document loaded", logging.FieldInput, path,
		logging.FieldBlocks, len(doc.Blocks), logging.FieldWidth, opts.PrintWidth)

	blocks := make([]jsdoc.Block, len(doc.Blocks))
	for i, b := range doc.Blocks {
		blocks[i] = jsdoc.Block(b.Tags)
	}

	bodies, err := runner.New(nil, logger).FormatBlocks(context.Background(), blocks, opts)
	if err != nil {
		return err
	}

	if flags.check {
		return checkBodies(doc, bodies, color)
	}

	return writeBodies(bodies, flags.output)
}

// applyFlags overlays explicitly-set CLI flags onto loaded options. The
// width defaults to the terminal width when stdout is a terminal.
func applyFlags(cmd *cobra.Command, opts *config.Options, flags *fmtFlags) {
	if cmd.Flags().Changed("width") {
		opts.PrintWidth = flags.width
	} else if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		opts.PrintWidth = w
	}
	if cmd.Flags().Changed("gap") {
		opts.GapWidth = flags.gap
	}
	if cmd.Flags().Changed("align") {
		opts.AlignVertically = flags.align
	}
	if cmd.Flags().Changed("prefer-fences") {
		opts.PreferFences = flags.fences
	}
	if cmd.Flags().Changed("punctuate") {
		opts.ForcePunctuation = flags.punctuate
	}
	if cmd.Flags().Changed("separate-groups") {
		opts.SeparateTagGroups = flags.separate
	}
	if cmd.Flags().Changed("show-description-tag") {
		opts.AlwaysShowDescriptionTag = flags.showDesc
	}
	opts.Jobs = flags.jobs
}

func readDocument(args []string) (*document, string, error) {
	var data []byte
	var err error
	path := "stdin"

	if len(args) == 1 {
		path = args[0]
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, path, fmt.Errorf("read input: %w", err)
	}

	doc := &document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, path, fmt.Errorf("parse document: %w", err)
	}
	return doc, path, nil
}

func checkBodies(doc *document, bodies []string, color string) error {
	styles := ui.NewStyles(ui.ColorEnabled(color, os.Stdout))

	dirty := 0
	for i, body := range bodies {
		if doc.Blocks[i].Body == body {
			continue
		}
		dirty++
		fmt.Fprintln(os.Stdout, styles.Error.Render(
			fmt.Sprintf("block %d is not canonical", i)))
	}

	if dirty > 0 {
		return ErrCheckFailed
	}
	fmt.Fprintln(os.Stdout, styles.Success.Render("all blocks canonical"))
	return nil
}

func writeBodies(bodies []string, output string) error {
	text := strings.Join(bodies, "\n---\n")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if output == "" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
