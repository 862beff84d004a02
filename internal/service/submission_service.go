package service

import (
	"context"
	"time"

	"github.com/newrayan/leads-service/environments"
	"github.com/newrayan/leads-service/internal/domain"
	"github.com/newrayan/leads-service/internal/relay"
	"github.com/newrayan/leads-service/internal/validation"
	"github.com/newrayan/leads-service/internal/whatsapp"
	"github.com/newrayan/leads-service/pkg/logger"
)

// Small internal interfaces so we can test without touching a real
// DB or the ad APIs.
type submissionRepository interface {
	Create(ctx context.Context, candidate domain.SubmissionCandidate) (*domain.Submission, error)
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	List(ctx context.Context) ([]domain.Submission, error)
	SetContacted(ctx context.Context, id string, sent bool, at time.Time) (*domain.Submission, error)
	Stats(ctx context.Context) (*domain.SubmissionStats, error)
}

type conversionRelay interface {
	Forward(ctx context.Context, in relay.EventInput) domain.RelayResult
}

// relayTimeout bounds the fire-and-forget lead event; the request
// that created the submission does not wait on it.
const relayTimeout = 15 * time.Second

type SubmissionService struct {
	repo   submissionRepository
	relay  conversionRelay
	config environments.WhatsAppConfig
}

func NewSubmissionService(
	repo submissionRepository,
	conversionRelay conversionRelay,
	config environments.WhatsAppConfig,
) *SubmissionService {
	return &SubmissionService{
		repo:   repo,
		relay:  conversionRelay,
		config: config,
	}
}

// Create validates and persists a new submission, then forwards a
// lead-submitted conversion event without blocking the caller. The
// returned bookingURL is the visitor-side WhatsApp deep link.
func (s *SubmissionService) Create(ctx context.Context, candidate domain.SubmissionCandidate) (*domain.Submission, string, error) {
	if fieldErrors := validation.Validate(candidate); fieldErrors != nil {
		return nil, "", &validation.ValidationError{Fields: fieldErrors}
	}

	submission, err := s.repo.Create(ctx, candidate)
	if err != nil {
		logger.Errorf("Failed to persist submission: %v", err)
		return nil, "", err
	}

	logger.Infof("Created submission %s (service: %s)", submission.ID, submission.SelectedService)

	if s.relay != nil {
		// Detached from the request context: relay failure or slowness
		// must never affect the submission flow.
		go func(sub domain.Submission) {
			relayCtx, cancel := context.WithTimeout(context.Background(), relayTimeout)
			defer cancel()

			s.relay.Forward(relayCtx, relay.EventInput{
				Name:            domain.EventLeadSubmitted,
				Phone:           sub.PhoneNumber,
				FirstName:       sub.Name,
				Service:         sub.SelectedService,
				ContentName:     "Dental Service Inquiry",
				ContentCategory: "dental_services",
			})
		}(*submission)
	}

	return submission, whatsapp.BookingLink(s.config.BusinessNumber, submission), nil
}

// List returns all submissions, newest first.
func (s *SubmissionService) List(ctx context.Context) ([]domain.Submission, error) {
	return s.repo.List(ctx)
}

// MarkContacted flips the contacted flag. Every sent=true call
// re-stamps contactedAt with the current time, re-marks included;
// sent=false clears it. Returns domain.ErrSubmissionNotFound for an
// unknown id.
func (s *SubmissionService) MarkContacted(ctx context.Context, id string, sent bool) (*domain.Submission, error) {
	submission, err := s.repo.SetContacted(ctx, id, sent, time.Now())
	if err != nil {
		return nil, err
	}

	logger.Infof("Submission %s contacted=%t", id, sent)

	return submission, nil
}

// OpenWhatsApp composes the admin follow-up deep link for a
// submission and marks it contacted. The two effects are independent:
// the link is returned even if the flag update fails, and the update
// is not rolled back if the operator never opens the link.
func (s *SubmissionService) OpenWhatsApp(ctx context.Context, id string) (string, *domain.Submission, error) {
	submission, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}

	url := whatsapp.FollowUpLink(submission)

	updated, err := s.MarkContacted(ctx, id, true)
	if err != nil {
		logger.Errorf("Failed to mark submission %s contacted after composing link: %v", id, err)
		return url, submission, nil
	}

	return url, updated, nil
}

// Stats returns submission counts for the dashboard header.
func (s *SubmissionService) Stats(ctx context.Context) (*domain.SubmissionStats, error) {
	return s.repo.Stats(ctx)
}
