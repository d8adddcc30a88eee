package triggers_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/anonto42/boujee-triggers/internal/models"
	"github.com/anonto42/boujee-triggers/internal/notifier"
	"github.com/anonto42/boujee-triggers/internal/repositories"
)

var _ repositories.UserRepository = (*fakeUsers)(nil)

type fakeUsers struct {
	users map[string]*models.User
	err   error
	calls int
}

func (f *fakeUsers) GetUserByID(_ context.Context, id string) (*models.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s: %w", id, repositories.ErrNotFound)
}

var _ repositories.TokenRepository = (*fakeTokens)(nil)

type fakeTokens struct {
	tokens map[string]string
	err    error
	asked  []string
}

func (f *fakeTokens) GetToken(_ context.Context, userID string) (*models.DeviceToken, error) {
	f.asked = append(f.asked, userID)
	if f.err != nil {
		return nil, f.err
	}
	if tok, ok := f.tokens[userID]; ok {
		return &models.DeviceToken{Token: tok}, nil
	}
	return nil, fmt.Errorf("fcm token for user %s: %w", userID, repositories.ErrNotFound)
}

var _ repositories.ReviewRepository = (*fakeReviews)(nil)

type fakeReviews struct {
	reviews map[string]*models.Review
	err     error
}

func (f *fakeReviews) GetReviewByID(_ context.Context, id string) (*models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.reviews[id]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("review %s: %w", id, repositories.ErrNotFound)
}

var _ repositories.ProfileCopyRepository = (*fakeCopies)(nil)

type updateCall struct {
	refs []models.ProfileCopyRef
	url  string
}

type fakeCopies struct {
	mu       sync.Mutex
	copies   map[models.CopyKind][]models.ProfileCopyRef
	findErr  error
	writeErr error
	finds    int
	updates  []updateCall
}

func (f *fakeCopies) FindCopies(_ context.Context, kind models.CopyKind, userID string) ([]models.ProfileCopyRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finds++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.copies[kind], nil
}

func (f *fakeCopies) UpdateImageURL(_ context.Context, refs []models.ProfileCopyRef, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updateCall{refs: refs, url: url})
	return f.writeErr
}

var _ notifier.Notifier = (*fakeNotifier)(nil)

type sentMessage struct {
	token   string
	payload models.NotificationPayload
}

type fakeNotifier struct {
	sent []sentMessage
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, token string, payload models.NotificationPayload) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, sentMessage{token: token, payload: payload})
	return fmt.Sprintf("projects/boujee/messages/%d", len(f.sent)), nil
}
