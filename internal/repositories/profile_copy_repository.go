package repositories

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/anonto42/boujee-triggers/internal/models"
)

const (
	backReferenceField = "firestoreID"
	imageURLField      = "userProfileImageURL"

	// MaxBatchWrites is the most writes Firestore accepts in one batch commit.
	MaxBatchWrites = 500
)

// ProfileCopyRepository finds and rewrites denormalized user profile copies
type ProfileCopyRepository interface {
	FindCopies(ctx context.Context, kind models.CopyKind, userID string) ([]models.ProfileCopyRef, error)
	UpdateImageURL(ctx context.Context, refs []models.ProfileCopyRef, url string) error
}

// FirestoreProfileCopyRepository implements ProfileCopyRepository with collection group queries
type FirestoreProfileCopyRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileCopyRepository(client *firestore.Client) *FirestoreProfileCopyRepository {
	return &FirestoreProfileCopyRepository{client: client}
}

// FindCopies returns every document of the kind's collection group whose firestoreID is userID
func (r *FirestoreProfileCopyRepository) FindCopies(ctx context.Context, kind models.CopyKind, userID string) ([]models.ProfileCopyRef, error) {
	docs, err := r.client.CollectionGroup(string(kind)).
		Where(backReferenceField, "==", userID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("query %s copies of user %s: %w", kind, userID, err)
	}

	refs := make([]models.ProfileCopyRef, 0, len(docs))
	for _, doc := range docs {
		refs = append(refs, models.ProfileCopyRef{Kind: kind, Path: relativePath(doc.Ref.Path)})
	}
	return refs, nil
}

// UpdateImageURL sets userProfileImageURL on every ref. Up to MaxBatchWrites refs
// commit as one atomic batch; larger sets commit as sequential batches and stop
// at the first failed commit.
func (r *FirestoreProfileCopyRepository) UpdateImageURL(ctx context.Context, refs []models.ProfileCopyRef, url string) error {
	for _, chunk := range Chunk(refs, MaxBatchWrites) {
		batch := r.client.Batch()
		for _, ref := range chunk {
			batch.Update(r.client.Doc(ref.Path), []firestore.Update{{Path: imageURLField, Value: url}})
		}
		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("commit batch of %d profile copies: %w", len(chunk), err)
		}
	}
	return nil
}

// Chunk splits refs into consecutive slices of at most size elements.
func Chunk(refs []models.ProfileCopyRef, size int) [][]models.ProfileCopyRef {
	if size <= 0 {
		size = MaxBatchWrites
	}
	var chunks [][]models.ProfileCopyRef
	for start := 0; start < len(refs); start += size {
		end := start + size
		if end > len(refs) {
			end = len(refs)
		}
		chunks = append(chunks, refs[start:end])
	}
	return chunks
}

// relativePath drops the "projects/{p}/databases/{d}/documents/" prefix of a document path.
func relativePath(full string) string {
	const marker = "/documents/"
	if i := strings.Index(full, marker); i >= 0 {
		return full[i+len(marker):]
	}
	return full
}
