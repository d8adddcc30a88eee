package triggers

import (
	"context"
	"errors"
	"time"

	"github.com/anonto42/boujee-triggers/internal/metrics"
	"github.com/anonto42/boujee-triggers/internal/models"
	"github.com/anonto42/boujee-triggers/internal/notifier"
	"github.com/anonto42/boujee-triggers/internal/repositories"
	"go.uber.org/zap"
)

// Service holds the document-change reactions. It keeps no state between
// invocations, so one instance serves concurrent events.
type Service struct {
	users    repositories.UserRepository
	tokens   repositories.TokenRepository
	reviews  repositories.ReviewRepository
	copies   repositories.ProfileCopyRepository
	notifier notifier.Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewService creates a new Service. m may be nil.
func NewService(
	users repositories.UserRepository,
	tokens repositories.TokenRepository,
	reviews repositories.ReviewRepository,
	copies repositories.ProfileCopyRepository,
	n notifier.Notifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		reviews:  reviews,
		copies:   copies,
		notifier: n,
		metrics:  m,
		logger:   logger,
	}
}

// Reject records an event whose record failed decoding or validation.
func (s *Service) Reject(ctx context.Context, trigger string, err error) Result {
	s.log(ctx).Warn("Rejected malformed record", zap.String("trigger", trigger), zap.Error(err))
	res := skipped(ReasonInvalidRecord)
	s.metrics.Observe(trigger, string(res.Outcome), time.Now())
	return res
}

func (s *Service) observe(trigger string, started time.Time, res *Result) {
	s.metrics.Observe(trigger, string(res.Outcome), started)
}

// dispatch resolves the device token of userID and sends payload to it.
// A missing token skips the send; a failed send is logged and not retried.
func (s *Service) dispatch(ctx context.Context, trigger, userID string, payload models.NotificationPayload) Result {
	log := s.log(ctx).With(zap.String("trigger", trigger), zap.String("user_id", userID))

	token, err := s.tokens.GetToken(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Warn("FCM token not found, skipping notification")
			return skipped(ReasonNoToken)
		}
		log.Error("Error looking up FCM token", zap.Error(err))
		return skipped(ReasonTokenLookupFailed)
	}

	id, err := s.notifier.Send(ctx, token.Token, payload)
	if err != nil {
		log.Error("Error sending notification", zap.Error(err))
		return Result{Outcome: OutcomeFailed, Reason: ReasonSendFailed}
	}

	log.Info("Notification sent", zap.String("message_id", id), zap.String("title", payload.Title))
	return Result{Outcome: OutcomeSent, MessageID: id}
}
