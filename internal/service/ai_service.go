package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"balanceed_backend/internal/config"
)

type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Chat sends a message list to the configured chat completions endpoint and
// returns the assistant's reply.
func (s *AIService) Chat(ctx context.Context, messages []AIChatMessage) (string, error) {
	reqBody := map[string]interface{}{
		"model":    s.config.Model,
		"messages": messages,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("AI API returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

// GenerateLessonContent drafts lesson body text from a topic prompt, for
// instructors building courses.
func (s *AIService) GenerateLessonContent(ctx context.Context, topic, difficulty string) (string, error) {
	system := "You are a curriculum writer for an online learning platform. " +
		"Write clear, well structured lesson content in Markdown. " +
		"Use headings, short paragraphs and concrete examples."
	user := fmt.Sprintf("Write lesson content about %q for a %s level audience.", topic, difficulty)

	return s.Chat(ctx, []AIChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
}
