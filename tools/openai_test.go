package tools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDisabledClientShortCircuits(t *testing.T) {
	c := NewOpenAI("", "", "chat", "embed", "caption")
	if c.Enabled() {
		t.Fatalf("client without key should be disabled")
	}

	if _, err := c.GenerateReply(context.Background(), "sys", "hi"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("GenerateReply: want ErrDisabled, got %v", err)
	}
	if _, err := c.EmbedText(context.Background(), "hi"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("EmbedText: want ErrDisabled, got %v", err)
	}
	if _, err := c.CaptionImage(context.Background(), []byte{0xff}, "describe"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("CaptionImage: want ErrDisabled, got %v", err)
	}
}

func TestGenerateReplyParsesChatCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header: %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "chat-model" || len(req.Messages) != 2 {
			t.Errorf("unexpected request: %+v", req)
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"  a styled reply  "}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAI("test-key", srv.URL, "chat-model", "embed-model", "caption-model")
	out, err := c.GenerateReply(context.Background(), "system prompt", "user query")
	if err != nil {
		t.Fatalf("GenerateReply: %v", err)
	}
	if out != "a styled reply" {
		t.Fatalf("want trimmed reply, got %q", out)
	}
}

func TestEmbedTextParsesVector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"data":[{"embedding":[0.25,-0.5,1]}]}`))
	}))
	defer srv.Close()

	c := NewOpenAI("test-key", srv.URL, "chat-model", "embed-model", "caption-model")
	v, err := c.EmbedText(context.Background(), "a navy cotton polo")
	if err != nil {
		t.Fatalf("EmbedText: %v", err)
	}
	if len(v) != 3 || v[0] != 0.25 || v[1] != -0.5 {
		t.Fatalf("unexpected vector: %v", v)
	}
}

func TestCaptionImageInlinesDataURL(t *testing.T) {
	var captured string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Errorf("decode request: %v", err)
		}
		b, _ := json.Marshal(raw)
		captured = string(b)
		w.Write([]byte(`{"choices":[{"message":{"content":"A navy cotton polo shirt."}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAI("test-key", srv.URL, "chat-model", "embed-model", "caption-model")
	out, err := c.CaptionImage(context.Background(), []byte{0xff, 0xd8, 0xff}, "describe the clothing")
	if err != nil {
		t.Fatalf("CaptionImage: %v", err)
	}
	if out != "A navy cotton polo shirt." {
		t.Fatalf("unexpected caption: %q", out)
	}
	if !strings.Contains(captured, "data:image/jpeg;base64,") {
		t.Fatalf("request should inline the image as a data URL: %s", captured)
	}
	if !strings.Contains(captured, `"caption-model"`) {
		t.Fatalf("caption requests should use the caption model: %s", captured)
	}
}

func TestAPIErrorSurfacesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	c := NewOpenAI("test-key", srv.URL, "chat-model", "embed-model", "caption-model")
	_, err := c.GenerateReply(context.Background(), "sys", "hi")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("want error carrying status, got %v", err)
	}
}
