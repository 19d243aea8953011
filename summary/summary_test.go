package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		fn      Func
		want    string
		wantErr bool
	}{
		{
			name: "success",
			fn:   func(ctx context.Context, p string) (string, error) { return "  Team A won.  ", nil },
			want: "Team A won.",
		},
		{
			name:    "error",
			fn:      func(ctx context.Context, p string) (string, error) { return "", errors.New("boom") },
			wantErr: true,
		},
		{
			name:    "blank",
			fn:      func(ctx context.Context, p string) (string, error) { return " \n", nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(context.Background(), tt.fn, "prompt")
			if tt.wantErr {
				if !errors.Is(err, ErrSummaryFailed) {
					t.Fatalf("Run() error = %v, want ErrSummaryFailed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Run() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatchReportPrompt(t *testing.T) {
	got := MatchReportPrompt("close match")
	want := "Summarize this match report in 2-3 concise sentences focusing on key highlights and outcome: close match"
	if got != want {
		t.Errorf("MatchReportPrompt() = %q, want %q", got, want)
	}
}

func TestOpenAISummarizer(t *testing.T) {
	var gotReq struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","created":1,"model":"m",
			"choices":[{"index":0,"message":{"role":"assistant","content":"Team A won a close match."},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	s, err := NewOpenAISummarizer(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Model: "test-model"})
	if err != nil {
		t.Fatalf("NewOpenAISummarizer() error = %v", err)
	}

	got, err := s.Summarize(context.Background(), MatchReportPrompt("close match"))
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "Team A won a close match." {
		t.Errorf("Summarize() = %q", got)
	}
	if gotReq.Model != "test-model" {
		t.Errorf("model = %q, want test-model", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("messages = %+v, want system + user", gotReq.Messages)
	}
}

func TestOpenAISummarizerTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	s, err := NewOpenAISummarizer(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewOpenAISummarizer() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := Run(ctx, s, "prompt"); !errors.Is(err, ErrSummaryFailed) {
		t.Errorf("Run() error = %v, want ErrSummaryFailed", err)
	}
}

func TestNewOpenAISummarizerRequiresKey(t *testing.T) {
	if _, err := NewOpenAISummarizer(OpenAIConfig{}); err == nil {
		t.Error("expected error without API key")
	}
}
