package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const apiURL = "https://slack.com/api/%s"

// HTTPClient реализует Client через Slack Web API.
type HTTPClient struct {
	token      string
	httpClient *http.Client
}

// NewHTTPClient создаёт нового HTTP клиента Slack по переданному bot токену.
func NewHTTPClient(token string) *HTTPClient {
	return &HTTPClient{
		token:      token,
		httpClient: &http.Client{},
	}
}

// PostMessage отправляет сообщение msg в канал channel через chat.postMessage.
// Возвращает nil в случае успеха.
func (c *HTTPClient) PostMessage(ctx context.Context, channel string, msg *Message) error {
	params := map[string]interface{}{
		"channel":     channel,
		"text":        msg.Text,
		"attachments": msg.Attachments,
	}

	return c.doRequest(ctx, "chat.postMessage", params)
}

// Respond отвечает на интерактивный callback, отправляя msg на responseURL.
// Возвращает nil в случае успеха.
func (c *HTTPClient) Respond(ctx context.Context, responseURL string, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, responseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed to post to response url %s: %w", responseURL, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected response status code %d for response url", resp.StatusCode)
	}

	return nil
}

// doRequest выполняет запрос к Slack Web API.
// Возвращает nil, если API ответил ok.
func (c *HTTPClient) doRequest(ctx context.Context, method string, params map[string]interface{}) error {
	url := fmt.Sprintf(apiURL, method)

	body, err := json.Marshal(params)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json; charset=utf-8")
	request.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var result struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return err
	}

	if !result.OK {
		return fmt.Errorf("slack api error: %s", result.Error)
	}

	return nil
}
