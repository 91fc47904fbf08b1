// Package advisor bridges coaching questions to the Gemini API.
package advisor

import (
	"context"
	"fmt"

	"nutribalance/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const (
	adviceTemperature = 0.8

	// advisePersonaFmt is the system instruction for free-text questions;
	// the placeholder carries the caller-built energy-balance summary.
	advisePersonaFmt = `You are a world-class elite nutritionist and fitness coach.
The user's current context is: %s.
Provide concise, expert-level advice. Use a supportive but direct "luxury coaching" tone.
Format your response in professional Markdown.`

	photoPersona = "You are a professional food analyst. Be precise with estimates."
	photoPrompt  = "Estimate the calories and macros (Protein, Carbs, Fats) for this meal. Provide a brief breakdown and health tip."
)

type geminiAdvisor struct {
	client *genai.Client
	model  string
}

// New creates a Gemini-backed advisor service.
func New(ctx context.Context, apiKey, model string) (service.AdvisorService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	return &geminiAdvisor{
		client: client,
		model:  model,
	}, nil
}

// Advise sends the question with the coaching persona and the user's
// current energy-balance summary, returning the reply text verbatim.
func (s *geminiAdvisor) Advise(ctx context.Context, question, userContext string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(fmt.Sprintf(advisePersonaFmt, userContext), genai.RoleUser),
		Temperature:       genai.Ptr(float32(adviceTemperature)),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(question), cfg)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate advice")
	}

	return resp.Text(), nil
}

// AnalyzeMealImage sends the inline image with a fixed estimation prompt.
func (s *geminiAdvisor) AnalyzeMealImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(image, mimeType),
		genai.NewPartFromText(photoPrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(photoPersona, genai.RoleUser),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, cfg)
	if err != nil {
		return "", errors.Wrap(err, "failed to analyze meal image")
	}

	return resp.Text(), nil
}
