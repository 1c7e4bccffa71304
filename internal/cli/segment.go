package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ppiankov/lidspan/internal/model"
	"github.com/ppiankov/lidspan/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	inputFile     string
	outJSON       string
	outYAML       string
	outFormat     string
	lidProvider   string
	lidModel      string
	minConfidence float64
	topK          int
	noCache       bool
	cacheDir      string
	segTimeout    time.Duration
)

// segmentCmd represents the segment command
var segmentCmd = &cobra.Command{
	Use:   "segment [text]",
	Short: "Segment text into script/language spans",
	Long: `Segment partitions text into contiguous spans tagged with script,
language and confidence. The text comes from the argument, a file, or
stdin.

Example:
  lidspan segment "Hola amigo, how are you?"
  lidspan segment --file notes.txt --json spans.json
  echo "你好，world!" | lidspan segment
  lidspan segment "yeh plan theek hai?" --provider openai`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)

	segmentCmd.Flags().StringVar(&inputFile, "file", "", "read the text from a file")
	segmentCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	segmentCmd.Flags().StringVar(&outYAML, "yaml", "", "output YAML path (optional)")
	segmentCmd.Flags().StringVar(&outFormat, "format", "table", "stdout format (table, json, yaml)")
	segmentCmd.Flags().DurationVar(&segTimeout, "timeout", 2*time.Minute, "overall timeout (remote classifiers are called once per token)")

	// Classifier flags
	segmentCmd.Flags().StringVar(&lidProvider, "provider", "lingua", "language classifier (lingua, openai, ollama)")
	segmentCmd.Flags().StringVar(&lidModel, "model", "", "model name for remote classifiers")
	segmentCmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.60, "per-token confidence floor below which the language becomes \"und\"")
	segmentCmd.Flags().IntVar(&topK, "top-k", 1, "ranked guesses to request per classification")
	segmentCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the prediction cache")
	segmentCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist predictions to this directory")
}

func runSegment(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), segTimeout)
	defer cancel()

	text, err := readInput(args)
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	result, err := p.SegmentText(ctx, text)
	if err != nil {
		return fmt.Errorf("segment failed: %w", err)
	}

	if err := p.RenderResult(result, outJSON, outYAML, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// readInput resolves the text from the argument, --file, or stdin
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// buildConfig assembles the pipeline configuration from flags and env
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Segmenter.MinClassifyConfidence = minConfidence
	cfg.Segmenter.TopK = topK
	cfg.LangID.Provider = lidProvider
	cfg.LangID.Model = lidModel
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.Output.Verbose = verbose
	if outFormat != "" {
		cfg.Output.Format = outFormat
	}

	// Remote providers read their API key from the environment
	switch lidProvider {
	case "openai":
		cfg.LangID.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LangID.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LangID.BaseURL = baseURL
		}
	}

	return cfg, nil
}
