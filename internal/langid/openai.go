package langid

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ppiankov/lidspan/internal/model"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider classifies text with a chat model through the OpenAI API,
// or any OpenAI-compatible endpoint such as Ollama.
type OpenAIProvider struct {
	client *openai.Client
	config Config
	pacer  *Pacer
}

// NewOpenAIProvider creates a new remote classifier
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	var pacer *Pacer
	if config.RequestsPerSecond > 0 {
		pacer = NewPacer(config.RequestsPerSecond, config.Burst)
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
		pacer:  pacer,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Predict asks the chat model for ranked language guesses
func (p *OpenAIProvider) Predict(ctx context.Context, text string, k int) ([]model.Prediction, error) {
	if k <= 0 {
		k = 1
	}

	if p.pacer != nil {
		if err := p.pacer.Wait(ctx); err != nil {
			return nil, err
		}
	}

	modelName := p.config.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	system := fmt.Sprintf("You are a language identification engine. "+
		"Reply with up to %d lines, one candidate per line, formatted as "+
		"\"<ISO-639-1 code> <probability>\", most probable first. No other text.", k)

	chatReq := openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		MaxTokens:   64,
		Temperature: 0,
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from classifier")
	}

	preds, err := parseRankedReply(resp.Choices[0].Message.Content, k)
	if err != nil {
		return nil, fmt.Errorf("malformed classifier reply: %w", err)
	}
	return preds, nil
}

// parseRankedReply parses "code probability" lines into predictions, keeping
// the first k well-formed entries. Malformed lines are skipped; a reply with
// no usable line at all is an error.
func parseRankedReply(reply string, k int) ([]model.Prediction, error) {
	var preds []model.Prediction
	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		prob, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil || prob < 0 || prob > 1 {
			continue
		}
		preds = append(preds, model.Prediction{
			Lang: NormalizeLang(fields[0]),
			Prob: prob,
		})
		if len(preds) == k {
			break
		}
	}
	if len(preds) == 0 {
		return nil, fmt.Errorf("no (code, probability) pairs in %q", reply)
	}

	// The contract promises descending probability even if the model
	// ranked its lines oddly.
	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].Prob > preds[j].Prob
	})
	return preds, nil
}
