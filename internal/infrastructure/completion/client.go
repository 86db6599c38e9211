package completion

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	"chat-server/services/chat-api/internal/config"
	"chat-server/services/chat-api/internal/infrastructure/logger"
	"chat-server/services/chat-api/internal/infrastructure/metrics"
	"chat-server/services/chat-api/internal/utils/platformerrors"
)

// temperature is the fixed sampling temperature sent with every request.
const temperature = 0.3

type clientStartsAt struct{}

// Client calls the upstream chat-completion API. One synchronous call per
// request; no retry, no backoff — a failed call fails the whole request.
type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	model   string
}

// NewClient builds the upstream client. The transport is constructed
// explicitly without a proxy function so an ambient HTTP(S)_PROXY variable is
// never silently picked up.
func NewClient(cfg *config.Config) *Client {
	transport := &http.Transport{Proxy: nil}

	client := resty.New().
		SetTransport(transport).
		SetTimeout(cfg.CompletionTimeout)

	client.AddRequestMiddleware(func(c *resty.Client, r *resty.Request) error {
		r.SetContext(context.WithValue(r.Context(), clientStartsAt{}, time.Now()))
		return nil
	})
	client.AddResponseMiddleware(func(c *resty.Client, r *resty.Response) error {
		log := logger.GetLogger()
		startTime, _ := r.Request.Context().Value(clientStartsAt{}).(time.Time)
		log.Debug().
			Str("client", "completion").
			Int("status", r.StatusCode()).
			Str("method", r.Request.RawRequest.Method).
			Str("path", r.Request.RawRequest.URL.Path).
			Dur("latency", time.Since(startTime)).
			Msg("HTTP client request")
		return nil
	})

	return &Client{
		client:  client,
		baseURL: strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		apiKey:  cfg.OpenAIAPIKey,
		model:   cfg.CompletionModel,
	}
}

// Complete sends the ordered turn list upstream and returns the first
// choice's message content.
func (c *Client) Complete(ctx context.Context, turns []openai.ChatCompletionMessage) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeInternal,
			"completion API key is not configured", nil, "6de40422-9f8a-44fd-b5bb-01b1f2f0a8c3")
	}

	request := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    turns,
		Temperature: temperature,
	}

	start := time.Now()
	var respBody openai.ChatCompletionResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(request).
		SetResult(&respBody).
		Post(c.baseURL + "/chat/completions")
	if err != nil {
		metrics.RecordCompletion(c.model, "error", time.Since(start))
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"completion request failed", err, "e3a51c0d-58a7-4f02-9f3e-4b1d9f0c22b4")
	}
	if resp.IsError() {
		metrics.RecordCompletion(c.model, "error", time.Since(start))
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("completion API returned status %d", resp.StatusCode()), nil, "1fd7a0b8-3c52-4f7e-8e0a-7b6cfdd0c9a5")
	}
	if len(respBody.Choices) == 0 {
		metrics.RecordCompletion(c.model, "error", time.Since(start))
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"completion API returned no choices", nil, "9c0b7e14-6a4f-4d2c-bb1e-2f8d3a5e6c07")
	}

	metrics.RecordCompletion(c.model, "ok", time.Since(start))
	return respBody.Choices[0].Message.Content, nil
}
