// Package genai is a minimal client for the Gemini generateContent REST
// API, configured the way the chat feature needs it: fixed sampling
// parameters and all four harm categories blocked only at high severity.
package genai

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrUpstream is returned when the API answers with a non-2xx status.
	ErrUpstream = errors.New("generation request failed")
	// ErrEmptyResponse is returned when the API answers 200 but no
	// candidate carries any text (e.g. the prompt was blocked).
	ErrEmptyResponse = errors.New("no text in generation response")
)

type Client struct {
	http   *resty.Client
	apiKey string
	model  string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		http:   resty.New().SetBaseURL(baseURL),
		apiKey: apiKey,
		model:  model,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
	TopK        int     `json:"topK"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var blockOnlyHigh = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_ONLY_HIGH"},
}

// GenerateContent sends the prompt and returns the first candidate's
// concatenated text.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: 1, TopP: 0.95, TopK: 64},
		SafetySettings:   blockOnlyHigh,
	}

	var out generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		if out.Error != nil {
			return "", fmt.Errorf("%w: %s", ErrUpstream, out.Error.Message)
		}
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}

	text := ""
	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			text += p.Text
		}
		if text != "" {
			break
		}
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
