// Package service provides testify mocks for the domain service
// interfaces.
package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAdvisorService is a testify mock of service.AdvisorService.
type MockAdvisorService struct {
	mock.Mock
}

func (m *MockAdvisorService) Advise(ctx context.Context, question, userContext string) (string, error) {
	args := m.Called(ctx, question, userContext)

	return args.String(0), args.Error(1)
}

func (m *MockAdvisorService) AnalyzeMealImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	args := m.Called(ctx, image, mimeType)

	return args.String(0), args.Error(1)
}
