// Package service defines interfaces for infrastructure-backed domain
// services.
package service

import "context"

// AdvisorService bridges free-text coaching questions to an external
// text-generation service. Implementations return the raw reply text;
// graceful degradation on failure is the caller's concern.
type AdvisorService interface {
	// Advise sends a user question together with a context summary of the
	// current energy balance and returns the service's reply verbatim.
	Advise(ctx context.Context, question, userContext string) (string, error)

	// AnalyzeMealImage asks the service to estimate calories and macros
	// from an encoded still image of a meal.
	AnalyzeMealImage(ctx context.Context, image []byte, mimeType string) (string, error)
}
