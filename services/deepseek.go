package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// defaultDeepseekModel is used when DEEPSEEK_MODEL is not configured.
const defaultDeepseekModel = "deepseek/deepseek-v3"

// DeepseekClient wraps the chat model behind the schedule proposal. Deepseek
// speaks the OpenAI wire protocol, so the openai provider is pointed at its
// endpoint and forced into JSON-object replies, which the proposal parser
// expects.
type DeepseekClient struct {
	DsChat llms.Model
}

func NewDeepseekClient(apiKey, apiEndpoint, model string) (*DeepseekClient, error) {
	if model == "" {
		model = defaultDeepseekModel
	}
	chat, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(model),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Deepseek client: %w", err)
	}

	return &DeepseekClient{
		DsChat: chat,
	}, nil
}
