package roadmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const model = "openai/gpt-4o-mini"

// Client generates a learning roadmap for a topic.
type Client interface {
	GenerateRoadmap(topic string) (string, error)
}

type OpenRouterClient struct {
	apiKey string
	url    string
	client *http.Client
}

func NewOpenRouterClient(apiKey, url string) *OpenRouterClient {
	return &OpenRouterClient{
		apiKey: apiKey,
		url:    url,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *OpenRouterClient) GenerateRoadmap(topic string) (string, error) {
	prompt := fmt.Sprintf(
		"Create a detailed 3-month learning roadmap for %s. Include weekly goals and key resources.",
		topic,
	)

	payload, err := json.Marshal(chatRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error calling openrouter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openrouter returned status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("error decoding openrouter response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", errors.New("openrouter returned no choices")
	}

	return chat.Choices[0].Message.Content, nil
}
