package models

// Comment is left on a review (Comments/{commentId}).
type Comment struct {
	ReviewID       string `json:"reviewID" firestore:"reviewID" validate:"required"`
	AuthorUserName string `json:"authorUserName" firestore:"authorUserName"`
}
