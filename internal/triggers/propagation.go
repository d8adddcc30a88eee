package triggers

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/boujee-triggers/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// OnUserUpdated copies a changed userProfileImageURL onto every denormalized
// profile copy whose firestoreID is userID. Query and write failures are
// returned so the platform can redeliver the event.
func (s *Service) OnUserUpdated(ctx context.Context, userID string, before, after models.User) (res Result, err error) {
	defer s.observe(TriggerUserUpdated, time.Now(), &res)

	if before.UserProfileImageURL == after.UserProfileImageURL {
		return Result{Outcome: OutcomeNoop, Reason: ReasonImageUnchanged}, nil
	}
	log := s.log(ctx).With(zap.String("trigger", TriggerUserUpdated), zap.String("user_id", userID))

	found := make([][]models.ProfileCopyRef, len(models.CopyKinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range models.CopyKinds {
		i, kind := i, kind
		g.Go(func() error {
			refs, err := s.copies.FindCopies(gctx, kind, userID)
			if err != nil {
				return err
			}
			found[i] = refs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("Error querying profile copies", zap.Error(err))
		return Result{Outcome: OutcomeFailed, Reason: ReasonQueryFailed}, fmt.Errorf("find profile copies of user %s: %w", userID, err)
	}

	var refs []models.ProfileCopyRef
	for _, r := range found {
		refs = append(refs, r...)
	}
	if len(refs) == 0 {
		log.Info("No profile copies to update")
		return Result{Outcome: OutcomePropagated}, nil
	}

	if err := s.copies.UpdateImageURL(ctx, refs, after.UserProfileImageURL); err != nil {
		log.Error("Error updating profile copies", zap.Int("copies", len(refs)), zap.Error(err))
		return Result{Outcome: OutcomeFailed, Reason: ReasonWriteFailed}, fmt.Errorf("update profile copies of user %s: %w", userID, err)
	}

	s.metrics.CopiesUpdated(len(refs))
	log.Info("Profile image propagated", zap.Int("copies", len(refs)))
	return Result{Outcome: OutcomePropagated, Updated: len(refs)}, nil
}
