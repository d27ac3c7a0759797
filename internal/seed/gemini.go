package seed

import (
	"context"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"staybook/internal/pkg/errs"
)

// GeminiCopywriter generates listing and review text with Gemini.
type GeminiCopywriter struct {
	model *genai.GenerativeModel
}

func NewGeminiCopywriter(ctx context.Context, apiKey string) (*GeminiCopywriter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create gemini client")
	}
	return &GeminiCopywriter{model: client.GenerativeModel("models/gemini-1.5-flash")}, nil
}

func (g *GeminiCopywriter) PropertyListing(ctx context.Context, city City, propertyType string) (string, string, error) {
	prompt := "Write a short-term rental listing for a " + propertyType + " in " + city.Name + ", " + city.Country + ". " +
		"First line: a catchy title of at most 60 characters. " +
		"Following lines: a 100-200 word description highlighting unique features. Plain text only."
	text, err := g.generate(ctx, prompt)
	if err != nil {
		return "", "", err
	}
	title, description, ok := strings.Cut(text, "\n")
	if !ok {
		return "", "", errs.Newf("unexpected listing format: %q", text)
	}
	return strings.TrimSpace(title), strings.TrimSpace(description), nil
}

func (g *GeminiCopywriter) ReviewComment(ctx context.Context, propertyType, cityName string, rating int) (string, error) {
	sentiment := "positive"
	switch {
	case rating <= 2:
		sentiment = "negative"
	case rating == 3:
		sentiment = "mixed"
	}
	prompt := "Write a " + sentiment + " guest review of 50-150 words for a " + propertyType + " stay in " + cityName +
		". Plain text only, no rating numbers."
	text, err := g.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (g *GeminiCopywriter) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errs.Wrap(err, "gemini generate error")
	}
	if len(resp.Candidates) == 0 {
		return "", errs.New("gemini returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
