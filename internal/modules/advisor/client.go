package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultModel = "gemini-3-flash-preview"

	persona = "You are a luxury beauty consultant for Lumière Essence. " +
		"Provide expert skincare advice that is professional, empathetic, and aesthetic. " +
		"Mention that our Silk Radiance Serum or Velvet Midnight Cream might help if applicable. " +
		"Keep the response under 150 words."

	emptyReply   = "I'm sorry, I couldn't generate advice at this moment."
	offlineReply = "I'm sorry, I'm having trouble connecting to my beauty wisdom right now. Please try again later."
)

// Client asks a hosted language model for skincare advice. It never returns
// an error to callers: any failure degrades to a static apology string.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL, apiKey, model string, logger *zap.Logger) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// SkinAdvice returns advice for the given free-text concerns.
func (c *Client) SkinAdvice(ctx context.Context, concerns string) string {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{
			Text: "Expert skincare advice for the following concerns: " + concerns,
		}}}},
		SystemInstruction: &content{Parts: []part{{Text: persona}}},
		GenerationConfig:  &generationConfig{Temperature: 0.7, TopP: 0.9},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		c.logger.Error("advisor request encode failed", zap.Error(err))
		return offlineReply
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("advisor request build failed", zap.Error(err))
		return offlineReply
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("advisor unreachable", zap.Error(err))
		return offlineReply
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("advisor rejected request", zap.String("status", resp.Status))
		return offlineReply
	}

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn("advisor response unreadable", zap.Error(err))
		return offlineReply
	}
	text := body.text()
	if text == "" {
		return emptyReply
	}
	return text
}

func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	out := ""
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}
