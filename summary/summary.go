// Package summary сокращает текстовые отчёты о матчах до пары предложений
// с помощью внешней языковой модели.
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// FailureSentinel записывается в ai_summary, когда краткое описание получить не удалось.
const FailureSentinel = "summary generation failed"

var ErrSummaryFailed = errors.New("summary generation failed")

type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Func адаптирует обычную функцию к интерфейсу Summarizer.
type Func func(ctx context.Context, prompt string) (string, error)

func (f Func) Summarize(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func MatchReportPrompt(notes string) string {
	return "Summarize this match report in 2-3 concise sentences focusing on key highlights and outcome: " + notes
}

// Run вызывает s и проверяет ответ. Любая неудача, включая пустой текст,
// возвращается как ErrSummaryFailed.
func Run(ctx context.Context, s Summarizer, prompt string) (string, error) {
	text, err := s.Summarize(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSummaryFailed, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrSummaryFailed)
	}
	return text, nil
}
