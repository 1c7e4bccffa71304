package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/lidspan/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	scanTimeout time.Duration
	userAgent   string
	maxBytes    int64
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch a page and segment its visible text",
	Long: `Scan fetches a web page, extracts the visible text, and segments it
into script/language spans. robots.txt is honored before fetching.

Example:
  lidspan scan https://en.wikipedia.org/wiki/Code-switching
  lidspan scan https://example.com --json spans.json
  lidspan scan https://example.com --provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Output flags
	scanCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	scanCmd.Flags().StringVar(&outYAML, "yaml", "", "output YAML path (optional)")
	scanCmd.Flags().StringVar(&outFormat, "format", "table", "stdout format (table, json, yaml)")

	// HTTP flags
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 2*time.Minute, "overall scan timeout")
	scanCmd.Flags().StringVar(&userAgent, "ua", "lidspan/0.1 (+https://github.com/ppiankov/lidspan)", "HTTP User-Agent")
	scanCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	scanCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	scanCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	scanCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// Classifier flags
	scanCmd.Flags().StringVar(&lidProvider, "provider", "lingua", "language classifier (lingua, openai, ollama)")
	scanCmd.Flags().StringVar(&lidModel, "model", "", "model name for remote classifiers")
	scanCmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.60, "per-token confidence floor below which the language becomes \"und\"")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the prediction cache")
	scanCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist predictions to this directory")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", scanTimeout)
		fmt.Fprintf(os.Stderr, "Classifier: %s\n", lidProvider)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.HTTP.Timeout = scanTimeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	result, err := p.ScanURL(ctx, url)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d characters of visible text\n", len([]rune(result.Text)))
		fmt.Fprintf(os.Stderr, "✓ Detected %d span(s)\n", len(result.Spans))
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderResult(result, outJSON, outYAML, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
