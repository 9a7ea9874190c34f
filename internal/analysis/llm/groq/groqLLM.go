package groq

import (
	"context"
	"errors"

	"github.com/akolanti/PolicyAPI/internal/analysis/llm"
	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/customHttpClient"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type llmClient struct {
	client    openai.Client
	modelName string
	logger    *logger_i.Logger
}

// NewGroqClient talks to Groq through its OpenAI-compatible endpoint.
// Returns nil when no API key is configured so main can report the
// capability as unavailable instead of failing on first use.
func NewGroqClient(apikey string, modelName string) llm.Provider {
	logger := logger_i.NewLogger("llm_groq")
	if apikey == "" {
		logger.Warn("No Groq API key set, reasoning capability disabled")
		return nil
	}

	client := openai.NewClient(
		option.WithAPIKey(apikey),
		option.WithBaseURL(config.GroqBaseURL),
		option.WithHTTPClient(customHttpClient.GetPooledClient()),
	)
	logger.Info("Groq client created", "model", modelName)
	return &llmClient{client: client, modelName: modelName, logger: logger}
}

func (c *llmClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := c.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       c.modelName,
		Temperature: openai.Float(float64(config.ModelTemperature)),
		MaxTokens:   openai.Int(int64(config.ModelMaxOutputTokens)),
	})
	if err != nil {
		log.Error("Groq completion failed", "error", err)
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return completion.Choices[0].Message.Content, nil
}
