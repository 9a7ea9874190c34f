package gemini

import (
	"context"
	"errors"

	"github.com/akolanti/PolicyAPI/internal/analysis/llm"
	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client    *genai.Client
	modelName string
	logger    *logger_i.Logger
}

func NewGeminiClient(ctx context.Context, apikey string, modelName string) llm.Provider {
	logger := logger_i.NewLogger("llm_gemini")
	if apikey == "" {
		logger.Warn("No Gemini API key set, reasoning capability disabled")
		return nil
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Gemini client:", "error", err)
		return nil
	}

	logger.Info("Gemini client created", "model", modelName)
	return &llmClient{client: c, modelName: modelName, logger: logger}
}

func (c *llmClient) Complete(ctx context.Context, prompt string) (string, error) {
	log := c.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	contentConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(config.ModelTemperature),
		MaxOutputTokens: config.ModelMaxOutputTokens,
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		genai.Text(prompt),
		contentConfig,
	)
	if err != nil {
		log.Error("Gemini completion failed", "error", err)
		return "", err
	}
	if result == nil {
		return "", errors.New("empty completion")
	}
	return result.Text(), nil
}
