package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"travelplanner/config"
	"travelplanner/logger"
)

var (
	ErrGeminiNotConfigured = errors.New("gemini API key not configured")
	ErrGeminiStatus        = errors.New("gemini returned an error status")
	ErrGeminiEmpty         = errors.New("gemini returned no candidates")
	ErrGeminiDecode        = errors.New("failed to parse gemini response")
)

type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewGeminiClient(cfg *config.Config, log *logger.Logger) *GeminiClient {
	c := &GeminiClient{
		apiKey:     cfg.Gemini.APIKey,
		model:      cfg.Gemini.Model,
		baseURL:    strings.TrimRight(cfg.Gemini.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Gemini.Timeout()},
		logger:     log.Named("gemini"),
	}
	if c.apiKey == "" {
		c.logger.Warn("GEMINI_API_KEY not set, general questions will not be answered")
	} else {
		c.logger.Info("Gemini initialized", logger.String("model", c.model))
	}
	return c
}

func (c *GeminiClient) Configured() bool {
	return c.apiKey != ""
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64  `json:"temperature"`
	TopK            int      `json:"topK"`
	TopP            float64  `json:"topP"`
	MaxOutputTokens int      `json:"maxOutputTokens"`
	StopSequences   []string `json:"stopSequences"`
	CandidateCount  int      `json:"candidateCount"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate sends a single-turn prompt and returns the first candidate's text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrGeminiNotConfigured
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 2048,
			StopSequences:   []string{},
			CandidateCount:  1,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	// key goes in a header, never in the URL
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w (%d): %s", ErrGeminiStatus, resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeminiDecode, err)
	}
	if len(gr.Candidates) == 0 {
		return "", ErrGeminiEmpty
	}
	parts := gr.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: candidate has no parts", ErrGeminiDecode)
	}
	return parts[0].Text, nil
}
