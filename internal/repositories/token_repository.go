package repositories

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/anonto42/boujee-triggers/internal/models"
)

const tokensCollection = "FCMTokens"

// TokenRepository resolves a user id to the device token registered for it
type TokenRepository interface {
	GetToken(ctx context.Context, userID string) (*models.DeviceToken, error)
}

// FirestoreTokenRepository implements TokenRepository for Firestore
type FirestoreTokenRepository struct {
	client *firestore.Client
}

// NewFirestoreTokenRepository creates a new FirestoreTokenRepository
func NewFirestoreTokenRepository(client *firestore.Client) *FirestoreTokenRepository {
	return &FirestoreTokenRepository{client: client}
}

// GetToken returns ErrNotFound when no token document exists or it holds an empty token.
func (r *FirestoreTokenRepository) GetToken(ctx context.Context, userID string) (*models.DeviceToken, error) {
	snap, err := r.client.Collection(tokensCollection).Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("fcm token for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("get fcm token for user %s: %w", userID, err)
	}

	var token models.DeviceToken
	if err := snap.DataTo(&token); err != nil {
		return nil, fmt.Errorf("decode fcm token for user %s: %w", userID, err)
	}
	if token.Token == "" {
		return nil, fmt.Errorf("fcm token for user %s is empty: %w", userID, ErrNotFound)
	}
	return &token, nil
}
