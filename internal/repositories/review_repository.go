package repositories

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/anonto42/boujee-triggers/internal/models"
)

const reviewsCollection = "Reviews"

// ReviewRepository defines the interface for review lookups
type ReviewRepository interface {
	GetReviewByID(ctx context.Context, id string) (*models.Review, error)
}

// FirestoreReviewRepository implements ReviewRepository for Firestore
type FirestoreReviewRepository struct {
	client *firestore.Client
}

// NewFirestoreReviewRepository creates a new FirestoreReviewRepository
func NewFirestoreReviewRepository(client *firestore.Client) *FirestoreReviewRepository {
	return &FirestoreReviewRepository{client: client}
}

// GetReviewByID retrieves Reviews/{id}, or ErrNotFound
func (r *FirestoreReviewRepository) GetReviewByID(ctx context.Context, id string) (*models.Review, error) {
	snap, err := r.client.Collection(reviewsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("review %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get review %s: %w", id, err)
	}

	var review models.Review
	if err := snap.DataTo(&review); err != nil {
		return nil, fmt.Errorf("decode review %s: %w", id, err)
	}
	return &review, nil
}
