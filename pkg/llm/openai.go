package llm

import (
	"context"
	"errors"
	"fmt"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/missionctl/missionctl/pkg/config"
)

// ChatCompletionsClient captures the subset of the OpenAI SDK used by the
// adapter. It is satisfied by *sdk.ChatCompletionService so tests can pass a
// mock.
type ChatCompletionsClient interface {
	New(ctx context.Context, body sdk.ChatCompletionNewParams, opts ...option.RequestOption) (*sdk.ChatCompletion, error)
}

// OpenAIProvider implements Provider on top of the OpenAI Chat Completions
// API.
type OpenAIProvider struct {
	chat ChatCompletionsClient
}

// NewOpenAIProvider builds a provider from an API key using the default SDK
// HTTP client.
func NewOpenAIProvider(apiKey string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("openai: api key is required")
	}
	client := sdk.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{chat: &client.Chat.Completions}, nil
}

// NewOpenAIProviderWithClient builds a provider around an existing client,
// used by tests.
func NewOpenAIProviderWithClient(chat ChatCompletionsClient) *OpenAIProvider {
	return &OpenAIProvider{chat: chat}
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return config.ProviderOpenAI }

// Generate implements Provider.
func (p *OpenAIProvider) Generate(ctx context.Context, req GenerateRequest) (ProviderResult, error) {
	messages := make([]sdk.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, sdk.SystemMessage(req.System))
	}
	messages = append(messages, sdk.UserMessage(req.User))

	params := sdk.ChatCompletionNewParams{
		Model:    sdk.ChatModel(req.Model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = sdk.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}

	completion, err := p.chat.New(ctx, params)
	if err != nil {
		return ProviderResult{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return ProviderResult{}, errors.New("openai: response has no choices")
	}
	return ProviderResult{
		Text:         completion.Choices[0].Message.Content,
		InputTokens:  int(completion.Usage.PromptTokens),
		OutputTokens: int(completion.Usage.CompletionTokens),
	}, nil
}
