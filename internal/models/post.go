package models

// Post is a Boujee sent from an author to a recipient (Posts/{postId}).
type Post struct {
	AuthorID       string `json:"authorID" firestore:"authorID"`
	AuthorUsername string `json:"authorUsername" firestore:"authorUsername"`
	RecipientID    string `json:"recipientID" firestore:"recipientID" validate:"required"`
	IsParent       bool   `json:"isParent" firestore:"isParent"`
	IsPaired       bool   `json:"isPaired" firestore:"isPaired"`
}

// PostKind is the notification flavor of a newly created post.
type PostKind string

const (
	PostKindNew        PostKind = "new"
	PostKindPairedBack PostKind = "paired_back"
	PostKindChained    PostKind = "chained"
)

// Kind resolves the flavor. isParent wins over isPaired; neither means a chain post.
func (p Post) Kind() PostKind {
	switch {
	case p.IsParent:
		return PostKindNew
	case p.IsPaired:
		return PostKindPairedBack
	default:
		return PostKindChained
	}
}
