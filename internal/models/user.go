package models

// User is the canonical profile document (Users/{userId}).
type User struct {
	FirstName           string `json:"firstName" firestore:"firstName"`
	LastName            string `json:"lastName" firestore:"lastName"`
	UserProfileImageURL string `json:"userProfileImageURL" firestore:"userProfileImageURL"`
}

// DisplayName joins first and last name with a single space, untrimmed.
func (u User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
