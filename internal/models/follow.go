package models

// CopyKind names a collection group holding denormalized user profile copies.
type CopyKind string

const (
	CopyKindChainUserProfile CopyKind = "chainUserProfiles"
	CopyKindFollower         CopyKind = "Followers"
	CopyKindFollowing        CopyKind = "Following"
)

// CopyKinds lists every collection group the profile propagation touches.
var CopyKinds = []CopyKind{CopyKindChainUserProfile, CopyKindFollower, CopyKindFollowing}

// ProfileCopy is a denormalized user profile stored under another document,
// such as Users/{userID}/Followers/{followerID}.
type ProfileCopy struct {
	FirestoreID         string `json:"firestoreID" firestore:"firestoreID"`
	UserProfileImageURL string `json:"userProfileImageURL" firestore:"userProfileImageURL"`
}

// ProfileCopyRef addresses one denormalized copy by its document path relative to the database root.
type ProfileCopyRef struct {
	Kind CopyKind
	Path string
}
