package models

// LiveBoujee is a post on a user's billboard (LiveBoujees/{postId}).
type LiveBoujee struct {
	UserID         string `json:"userID" firestore:"userID" validate:"required"`
	AuthorUsername string `json:"authorUsername" firestore:"authorUsername"`
	Anonymous      *bool  `json:"anonymous" firestore:"anonymous"`
}

// RevealsAuthor is true only when anonymous is explicitly false.
func (l LiveBoujee) RevealsAuthor() bool {
	return l.Anonymous != nil && !*l.Anonymous
}
