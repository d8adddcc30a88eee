package models

// Review is a Boujee review (Reviews/{reviewId}); UID is the user it was written for.
type Review struct {
	UID string `json:"uid" firestore:"uid" validate:"required"`
}
