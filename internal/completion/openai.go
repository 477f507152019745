package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
)

type OpenAIConfig func(client *OpenAIClient)

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint.
type OpenAIClient struct {
	base url.URL
	http *http.Client
}

const defaultTimeout = 120 * time.Second

func NewOpenAIClient(baseUrl string, opts ...OpenAIConfig) (*OpenAIClient, error) {
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	client := &OpenAIClient{
		base: *base,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, cfg := range opts {
		cfg(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) OpenAIConfig {
	return func(client *OpenAIClient) {
		client.http = httpClient
	}
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (oc *OpenAIClient) Complete(ctx context.Context, apiKey string, req Request) (*Response, error) {
	if apiKey == "" {
		return nil, apperr.NewUnauthorized("missing api key")
	}
	if req.Model == "" {
		return nil, apperr.NewValidation("missing model name")
	}
	if len(req.Messages) == 0 {
		return nil, apperr.NewValidation("missing messages")
	}

	var resp Response
	if err := oc.do(ctx, apiKey, "/chat/completions", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (oc *OpenAIClient) do(ctx context.Context, apiKey, path string, reqData, respData any) error {
	reqDataBytes, err := json.Marshal(reqData)
	if err != nil {
		return err
	}

	reqURL := oc.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(reqDataBytes))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := oc.http.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return classifyProviderError(resp.StatusCode, respBody)
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

// classifyProviderError maps the provider's structured error body onto the
// application taxonomy. Unrecognized shapes stay generic errors.
func classifyProviderError(status int, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || eb.Error.Message == "" {
		return fmt.Errorf("unexpected status code: %d, body: %s", status, string(body))
	}

	code := eb.Error.Code
	if code == "" {
		code = eb.Error.Type
	}

	switch {
	case code == "insufficient_quota" || eb.Error.Type == "insufficient_quota":
		return apperr.NewQuota(eb.Error.Message)
	case code == apperr.ProviderCodeInvalidAPIKey || status == http.StatusUnauthorized:
		return apperr.NewProvider(eb.Error.Message, apperr.ProviderCodeInvalidAPIKey)
	case eb.Error.Type == "invalid_request_error" || status == http.StatusBadRequest:
		return apperr.NewProvider(eb.Error.Message, code)
	default:
		return fmt.Errorf("completion provider error (%d): %s", status, eb.Error.Message)
	}
}
