package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/lidspan/internal/model"
)

// TextSegmenter is the slice of the pipeline the batch processor needs
type TextSegmenter interface {
	SegmentText(ctx context.Context, text string) (*model.Result, error)
}

// SegmentJob segments one input text
type SegmentJob struct {
	Index     int
	Text      string
	Segmenter TextSegmenter
}

// Execute executes the segmentation job
func (j *SegmentJob) Execute(ctx context.Context) Result {
	result, err := j.Segmenter.SegmentText(ctx, j.Text)
	return &SegmentResult{
		Index:  j.Index,
		Text:   j.Text,
		Result: result,
		Err:    err,
	}
}

// SegmentResult represents the result of a segmentation job
type SegmentResult struct {
	Index  int
	Text   string
	Result *model.Result
	Err    error
}

// GetError returns the error from the segmentation result
func (r *SegmentResult) GetError() error {
	return r.Err
}

// BatchProcessor segments multiple texts concurrently. Separate texts are
// independent calls, so they parallelize freely.
type BatchProcessor struct {
	segmenter   TextSegmenter
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(segmenter TextSegmenter, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		segmenter:   segmenter,
		concurrency: concurrency,
	}
}

// ProcessTexts segments the texts concurrently, returning results in input
// order. Cancelling ctx stops the batch: in-flight segmentations see the
// cancellation and still-queued texts yield no result.
func (b *BatchProcessor) ProcessTexts(ctx context.Context, texts []string) []*SegmentResult {
	if len(texts) == 0 {
		return []*SegmentResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for i, text := range texts {
		pool.Submit(&SegmentJob{
			Index:     i,
			Text:      text,
			Segmenter: b.segmenter,
		})
	}

	results := pool.Wait()

	segmentResults := make([]*SegmentResult, len(results))
	for i, result := range results {
		segmentResults[i] = result.(*SegmentResult)
	}
	sort.Slice(segmentResults, func(i, j int) bool {
		return segmentResults[i].Index < segmentResults[j].Index
	})

	return segmentResults
}

// ProcessFile reads texts from a file and segments them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*SegmentResult, error) {
	texts, err := ReadTextsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read texts: %w", err)
	}

	return b.ProcessTexts(ctx, texts), nil
}

// ReadTextsFromFile reads texts from a file (one per line). Empty lines and
// lines starting with "#" are skipped.
func ReadTextsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var texts []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		texts = append(texts, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return texts, nil
}
