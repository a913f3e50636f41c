package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const chatModel = "gemini-1.5-flash-latest"

// generateChatReply asks Gemini for a short customer-service reply. The
// recognized intent is passed along so the model stays on topic.
func generateChatReply(ctx context.Context, message, intent string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return "", fmt.Errorf("creating gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(chatModel)
	prompt := fmt.Sprintf(
		"You are a friendly assistant for a coffee shop. The customer's intent is %q. Reply briefly to: %s",
		intent, message,
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected gemini response part")
	}
	return string(text), nil
}
