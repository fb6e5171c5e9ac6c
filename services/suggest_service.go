package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/afrazja/bizanalysis-backend/models"
)

// SuggestClient produces SWOT suggestions from analysis context. With an
// API key configured it calls an OpenAI-compatible chat completions
// endpoint; without one it falls back to deterministic quadrant-driven
// suggestions so demo deployments keep a working button.
type SuggestClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewSuggestClient reads OPENAI_API_KEY, OPENAI_BASE_URL and OPENAI_MODEL.
func NewSuggestClient() *SuggestClient {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &SuggestClient{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Suggest returns four suggestion lists for the given context.
func (s *SuggestClient) Suggest(ctx context.Context, req models.SuggestSWOTRequest) (models.SWOTLists, error) {
	if s.apiKey == "" {
		log.Printf("[suggest] OPENAI_API_KEY not set, using heuristic suggestions")
		return HeuristicSuggestions(req), nil
	}
	return s.suggestViaAPI(ctx, req)
}

func (s *SuggestClient) suggestViaAPI(ctx context.Context, req models.SuggestSWOTRequest) (models.SWOTLists, error) {
	contextJSON, err := json.Marshal(req)
	if err != nil {
		return models.SWOTLists{}, fmt.Errorf("marshal context: %w", err)
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: "You are a strategy analyst. Given portfolio context, reply with a JSON object " +
					`{"strengths":[],"weaknesses":[],"opportunities":[],"threats":[]} of short bullet strings. No prose.`,
			},
			{Role: "user", Content: string(contextJSON)},
		},
		Temperature:    0.4,
		ResponseFormat: map[string]any{"type": "json_object"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return models.SWOTLists{}, fmt.Errorf("marshal payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return models.SWOTLists{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		log.Printf("[suggest] request failed: %v", err)
		return models.SWOTLists{}, fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.SWOTLists{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[suggest] api returned status %d: %s", resp.StatusCode, string(respBody))
		return models.SWOTLists{}, fmt.Errorf("suggestion api error: status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return models.SWOTLists{}, fmt.Errorf("decode response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return models.SWOTLists{}, fmt.Errorf("suggestion api returned no choices")
	}

	var lists models.SWOTLists
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &lists); err != nil {
		return models.SWOTLists{}, fmt.Errorf("decode suggestions: %w", err)
	}
	return lists, nil
}

// HeuristicSuggestions derives suggestions from the quadrant makeup of the
// supplied points. Deterministic: same context, same output.
func HeuristicSuggestions(req models.SuggestSWOTRequest) models.SWOTLists {
	lists := models.SWOTLists{
		Strengths:     []string{},
		Weaknesses:    []string{},
		Opportunities: []string{},
		Threats:       []string{},
	}
	for _, p := range req.Points {
		switch Classify(p.RMS, p.Growth) {
		case models.QuadrantStar:
			lists.Strengths = append(lists.Strengths, fmt.Sprintf("%s leads a high-growth market", p.Name))
		case models.QuadrantCashCow:
			lists.Strengths = append(lists.Strengths, fmt.Sprintf("%s generates stable cash in a mature market", p.Name))
		case models.QuadrantQuestionMark:
			lists.Opportunities = append(lists.Opportunities, fmt.Sprintf("%s could capture share in a growing market", p.Name))
		case models.QuadrantDog:
			lists.Weaknesses = append(lists.Weaknesses, fmt.Sprintf("%s trails rivals in a low-growth market", p.Name))
		}
	}
	if len(req.Points) > 0 {
		lists.Threats = append(lists.Threats, "Rival consolidation could shift relative market share")
	}
	if req.Industry != "" {
		lists.Opportunities = append(lists.Opportunities, "Adjacent segments in "+req.Industry)
	}
	return lists
}
