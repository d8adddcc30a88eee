package repositories

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/anonto42/boujee-triggers/internal/models"
)

const usersCollection = "Users"

// UserRepository defines the interface for user lookups
type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// FirestoreUserRepository implements UserRepository for Firestore
type FirestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new FirestoreUserRepository
func NewFirestoreUserRepository(client *firestore.Client) *FirestoreUserRepository {
	return &FirestoreUserRepository{client: client}
}

// GetUserByID retrieves Users/{id}, or ErrNotFound
func (r *FirestoreUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	snap, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}

	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}
	return &user, nil
}
