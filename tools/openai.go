package tools

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrDisabled is returned by every call on a client built without an API key.
var ErrDisabled = errors.New("ai client disabled: no API key configured")

// OpenAI talks to an OpenAI-compatible inference platform (chat completions,
// embeddings, vision captioning). Construct it once and pass it to whoever
// needs it; there is no package-level client state.
type OpenAI struct {
	apiKey         string
	baseURL        string
	chatModel      string
	embeddingModel string
	captionModel   string
	client         *http.Client
}

// NewOpenAI builds a client. An empty API key yields a disabled client whose
// calls all fail with ErrDisabled, so the demo degrades instead of crashing.
func NewOpenAI(apiKey, baseURL, chatModel, embeddingModel, captionModel string) *OpenAI {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		log.Printf("tools: OPENAI_API_KEY not set, AI features disabled (create a .env file holding your API key)")
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAI{
		apiKey:         apiKey,
		baseURL:        strings.TrimRight(baseURL, "/"),
		chatModel:      chatModel,
		embeddingModel: embeddingModel,
		captionModel:   captionModel,
		client:         &http.Client{Timeout: 30 * time.Second},
	}
}

func (o *OpenAI) Enabled() bool {
	return o.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateReply asks the chat model for a completion of the user query under
// the given system prompt.
func (o *OpenAI) GenerateReply(ctx context.Context, systemPrompt, query string) (string, error) {
	reply, err := o.chat(ctx, o.chatModel, []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: query},
	})
	if err != nil {
		return "", err
	}
	return reply, nil
}

// CaptionImage asks the vision model to describe a JPEG image. The image is
// inlined into the chat message as a base64 data URL.
func (o *OpenAI) CaptionImage(ctx context.Context, jpeg []byte, prompt string) (string, error) {
	if len(jpeg) == 0 {
		return "", fmt.Errorf("caption: empty image")
	}
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpeg)

	content := []map[string]any{
		{"type": "text", "text": prompt},
		{"type": "image_url", "image_url": map[string]any{"url": dataURL, "detail": "low"}},
	}
	return o.chat(ctx, o.captionModel, []chatMessage{
		{Role: "user", Content: content},
	})
}

func (o *OpenAI) chat(ctx context.Context, model string, messages []chatMessage) (string, error) {
	if !o.Enabled() {
		return "", ErrDisabled
	}

	body, err := o.post(ctx, "/chat/completions", chatRequest{Model: model, Messages: messages})
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from model %s", model)
	}
	out := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("empty response from model %s", model)
	}
	return out, nil
}

// EmbedText returns a semantic embedding vector for the given text.
func (o *OpenAI) EmbedText(ctx context.Context, text string) ([]float64, error) {
	if !o.Enabled() {
		return nil, ErrDisabled
	}

	body, err := o.post(ctx, "/embeddings", map[string]any{
		"model": o.embeddingModel,
		"input": text,
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode embeddings response: %w", err)
	}
	if len(parsed.Data) == 0 || len(parsed.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding")
	}
	return parsed.Data[0].Embedding, nil
}

func (o *OpenAI) post(ctx context.Context, path string, payload any) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ai api error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
