package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/echocare/echocare/internal/domain/errors"
)

const (
	systemPrompt = "You are EchoCare, a warm, empathetic companion for students. " +
		"Be concise, kind, and give short calming advice or a simple actionable suggestion. "

	// turnMarker closes the prompt; the model's reply is everything it
	// generates after the last occurrence.
	turnMarker = "Echo Care:"

	maxNewTokens = 140
	temperature  = 0.7
)

// TextCompleter produces a raw continuation for a prompt. Implemented by the
// llm adapter; stubbed in tests.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// ChatUseCase renders the EchoCare prompt, invokes the completion backend and
// extracts the reply. Generation is stochastic: identical inputs may yield
// different text.
type ChatUseCase struct {
	completer TextCompleter
	timeout   time.Duration
}

// NewChatUseCase constructs ChatUseCase. A non-positive timeout disables the
// deadline on the completion call.
func NewChatUseCase(completer TextCompleter, timeout time.Duration) *ChatUseCase {
	return &ChatUseCase{completer: completer, timeout: timeout}
}

// Reply generates a single empathetic response to the user message, optionally
// given prior context text. Backend failures propagate untouched; there is no
// retry.
func (u *ChatUseCase) Reply(ctx context.Context, message, contextText string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", domainErrors.ErrEmptyMessage
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	prompt := BuildPrompt(message, contextText)
	out, err := u.completer.Complete(ctx, prompt, maxNewTokens, temperature)
	if err != nil {
		return "", err
	}

	return extractReply(out), nil
}

// BuildPrompt renders the fixed EchoCare template around the user message.
func BuildPrompt(message, contextText string) string {
	return fmt.Sprintf("%s\nContext: %s\nUser: %s\n%s", systemPrompt, contextText, message, turnMarker)
}

// extractReply strips everything up to the last turn marker. A model that
// ignored the template degrades to the full trimmed output instead of erroring.
func extractReply(out string) string {
	if idx := strings.LastIndex(out, turnMarker); idx >= 0 {
		out = out[idx+len(turnMarker):]
	}
	return strings.TrimSpace(out)
}
