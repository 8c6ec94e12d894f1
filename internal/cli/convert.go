package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pzaremba/spanscope/internal/corpus"
	"github.com/pzaremba/spanscope/internal/model"
	"github.com/pzaremba/spanscope/internal/pipeline"
	"github.com/pzaremba/spanscope/internal/store"
	"github.com/spf13/cobra"
)

var (
	convertFormat string
	convertOut    string
	convertLayer  string
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert an annotation dump into a .spanscope corpus file",
	Long: `Convert parses a raw annotation dump into spanscope's corpus format
so later analyze runs skip the parsing step entirely.

Supported inputs:
- CoNLL/IOB column dumps (conll2000/conll2003 style)
- GENIA nested-IOB dumps (up to four nesting levels)
- Directories of BRAT standoff .txt/.ann pairs

Example:
  spanscope convert genia.iob2 -o genia.spanscope
  spanscope convert ./riqua/merged --format brat -o riqua.spanscope`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFormat, "format", "auto", "input format (auto, conll, genia, brat)")
	convertCmd.Flags().StringVarP(&convertOut, "output", "o", "", "output path (default: input stem + .spanscope)")
	convertCmd.Flags().StringVar(&convertLayer, "layer", "sc", "span layer to assign the annotations to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	format := pipeline.Format(convertFormat)
	if format == pipeline.FormatAuto {
		detected, err := pipeline.DetectFormat(input)
		if err != nil {
			return err
		}
		format = detected
	}

	var (
		c        model.Corpus
		warnings []string
		err      error
	)
	switch format {
	case pipeline.FormatCoNLL:
		c, err = parseFile(input, func(f *os.File) (model.Corpus, error) {
			return corpus.ParseCoNLL(f, convertLayer)
		})
	case pipeline.FormatGENIA:
		c, err = parseFile(input, func(f *os.File) (model.Corpus, error) {
			return corpus.ParseGENIA(f, convertLayer, corpus.GENIANestingLevels)
		})
	case pipeline.FormatBRAT:
		c, warnings, err = corpus.ParseBRATDir(input, convertLayer)
	case pipeline.FormatSpanscope:
		return fmt.Errorf("%s is already a corpus file", input)
	default:
		return fmt.Errorf("unknown input format %q", convertFormat)
	}
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}

	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	out := convertOut
	if out == "" {
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		out = stem + store.Ext
	}
	if err := store.Save(out, c); err != nil {
		return fmt.Errorf("save corpus: %w", err)
	}

	spans := 0
	for _, doc := range c {
		for _, layerSpans := range doc.Spans {
			spans += len(layerSpans)
		}
	}
	fmt.Printf("Converted %d documents (%d spans) to %s\n", len(c), spans, out)
	return nil
}

func parseFile(path string, parse func(*os.File) (model.Corpus, error)) (model.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()
	return parse(f)
}
