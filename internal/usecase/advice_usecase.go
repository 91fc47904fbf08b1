package usecase

import "context"

// AdviceUsecase bridges free-text questions and meal photos to the external
// coaching service. Service failures never surface as errors: the reply is
// a fixed fallback string instead, so the accounting side of the app stays
// unaffected. Only one request may be in flight at a time.
type AdviceUsecase interface {
	// Ask forwards a coaching question together with the current
	// energy-balance summary.
	Ask(ctx context.Context, input *AskAdviceInput) (string, error)

	// AnalyzeMealPhoto asks the service to estimate calories and macros
	// from a still image.
	AnalyzeMealPhoto(ctx context.Context, input *AnalyzeMealPhotoInput) (string, error)
}

// AskAdviceInput defines a free-text coaching question.
type AskAdviceInput struct {
	Question string `json:"question"`
}

// AnalyzeMealPhotoInput defines an encoded meal photo.
type AnalyzeMealPhotoInput struct {
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type,omitempty"`
}
