package triggers

import (
	"context"
	"errors"
	"time"

	"github.com/anonto42/boujee-triggers/internal/models"
	"github.com/anonto42/boujee-triggers/internal/repositories"
	"go.uber.org/zap"
)

// OnPostCreated notifies the recipient of a new, paired-back or chained Boujee.
func (s *Service) OnPostCreated(ctx context.Context, postID string, post models.Post) (res Result) {
	defer s.observe(TriggerPostCreated, time.Now(), &res)

	ctx = WithLogger(ctx, s.log(ctx).With(zap.String("post_id", postID), zap.String("kind", string(post.Kind()))))
	return s.dispatch(ctx, TriggerPostCreated, post.RecipientID, PostPayload(postID, post))
}

// OnFollowerCreated notifies userID that followerID started following them.
func (s *Service) OnFollowerCreated(ctx context.Context, userID, followerID string) (res Result) {
	defer s.observe(TriggerFollowerCreated, time.Now(), &res)
	log := s.log(ctx).With(zap.String("follower_id", followerID))

	follower, err := s.users.GetUserByID(ctx, followerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Warn("Follower user not found, skipping notification", zap.String("user_id", userID))
			return skipped(ReasonFollowerNotFound)
		}
		log.Error("Error looking up follower", zap.Error(err))
		return skipped(ReasonUserLookupFailed)
	}

	name := follower.DisplayName()
	log.Info("New follower added", zap.String("follower_name", name), zap.String("user_id", userID))

	return s.dispatch(WithLogger(ctx, log), TriggerFollowerCreated, userID, FollowerPayload(name))
}

// OnReviewCreated notifies the user a review was written for.
func (s *Service) OnReviewCreated(ctx context.Context, reviewID string, review models.Review) (res Result) {
	defer s.observe(TriggerReviewCreated, time.Now(), &res)

	ctx = WithLogger(ctx, s.log(ctx).With(zap.String("review_id", reviewID)))
	return s.dispatch(ctx, TriggerReviewCreated, review.UID, ReviewPayload())
}

// OnCommentCreated notifies the owner of the commented review.
func (s *Service) OnCommentCreated(ctx context.Context, commentID string, comment models.Comment) (res Result) {
	defer s.observe(TriggerCommentCreated, time.Now(), &res)
	log := s.log(ctx).With(zap.String("comment_id", commentID), zap.String("review_id", comment.ReviewID))

	review, err := s.reviews.GetReviewByID(ctx, comment.ReviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Warn("Commented review not found, skipping notification")
			return skipped(ReasonReviewNotFound)
		}
		log.Error("Error looking up review", zap.Error(err))
		return skipped(ReasonReviewLookupFailed)
	}
	if review.UID == "" {
		log.Warn("Review has no owner, skipping notification")
		return skipped(ReasonNoTargetUser)
	}

	return s.dispatch(WithLogger(ctx, log), TriggerCommentCreated, review.UID, CommentPayload(comment.AuthorUserName))
}

// OnLiveBoujeeCreated notifies the owner of the billboard.
func (s *Service) OnLiveBoujeeCreated(ctx context.Context, postID string, live models.LiveBoujee) (res Result) {
	defer s.observe(TriggerLiveBoujeeCreated, time.Now(), &res)

	ctx = WithLogger(ctx, s.log(ctx).With(zap.String("post_id", postID), zap.Bool("anonymous", !live.RevealsAuthor())))
	return s.dispatch(ctx, TriggerLiveBoujeeCreated, live.UserID, LiveBoujeePayload(live))
}
