package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"
	"sync/atomic"

	domainerrors "nutribalance/internal/domain/errors"
	"nutribalance/internal/domain/service"
	"nutribalance/internal/usecase"

	"github.com/pkg/errors"
)

// Fixed fallback replies. The advisory feature degrades to these strings
// on any service failure instead of breaking the accounting UI.
const (
	adviceFallback   = "The elite server is currently busy. Please try again in a moment."
	adviceEmptyReply = "I'm sorry, I couldn't process that request at the moment."
	photoFallback    = "Error analyzing the image."
	defaultPhotoMime = "image/jpeg"
)

// adviceService implements the AdviceUsecase interface.
type adviceService struct {
	advisor service.AdvisorService
	tracker usecase.TrackerUsecase
	logger  *slog.Logger

	// inFlight gates concurrent requests: a second submission while one is
	// outstanding is rejected rather than silently double-sent.
	inFlight atomic.Bool
}

// NewAdviceService is the constructor for adviceService. The advisor may
// be nil when no API key is configured; every request then degrades to the
// fallback reply.
func NewAdviceService(
	advisor service.AdvisorService,
	tracker usecase.TrackerUsecase,
	logger *slog.Logger,
) usecase.AdviceUsecase {
	return &adviceService{
		advisor: advisor,
		tracker: tracker,
		logger:  logger,
	}
}

// Ask forwards a coaching question with the current energy-balance summary.
func (srv *adviceService) Ask(ctx context.Context, input *usecase.AskAdviceInput) (string, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "question is empty")
	}

	release, err := srv.acquire()
	if err != nil {
		return "", err
	}
	defer release()

	userContext, err := srv.tracker.ContextSummary(ctx)
	if err != nil {
		srv.logger.Warn("failed to build context summary", "error", err)
		userContext = ""
	}

	if srv.advisor == nil {
		srv.logger.Warn("advisor not configured, returning fallback reply")

		return adviceFallback, nil
	}

	reply, err := srv.advisor.Advise(ctx, question, userContext)
	if err != nil {
		srv.logger.Error("advice request failed", "error", err)

		return adviceFallback, nil
	}
	if reply == "" {
		return adviceEmptyReply, nil
	}

	return reply, nil
}

// AnalyzeMealPhoto forwards an encoded meal photo for macro estimation.
func (srv *adviceService) AnalyzeMealPhoto(ctx context.Context, input *usecase.AnalyzeMealPhotoInput) (string, error) {
	image, err := base64.StdEncoding.DecodeString(input.ImageBase64)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "image payload is not valid base64")
	}
	if len(image) == 0 {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "image payload is empty")
	}

	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = defaultPhotoMime
	}

	release, err := srv.acquire()
	if err != nil {
		return "", err
	}
	defer release()

	if srv.advisor == nil {
		srv.logger.Warn("advisor not configured, returning fallback reply")

		return photoFallback, nil
	}

	reply, err := srv.advisor.AnalyzeMealImage(ctx, image, mimeType)
	if err != nil {
		srv.logger.Error("meal photo analysis failed", "error", err)

		return photoFallback, nil
	}

	return reply, nil
}

// acquire claims the single in-flight slot shared by both entry points.
func (srv *adviceService) acquire() (func(), error) {
	if !srv.inFlight.CompareAndSwap(false, true) {
		return nil, errors.WithStack(domainerrors.ErrAdviceInFlight)
	}

	return func() { srv.inFlight.Store(false) }, nil
}
