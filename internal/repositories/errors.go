package repositories

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when a looked-up document does not exist.
var ErrNotFound = errors.New("document not found")

var (
	_ UserRepository        = (*FirestoreUserRepository)(nil)
	_ TokenRepository       = (*FirestoreTokenRepository)(nil)
	_ ReviewRepository      = (*FirestoreReviewRepository)(nil)
	_ ProfileCopyRepository = (*FirestoreProfileCopyRepository)(nil)
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
