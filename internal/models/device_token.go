package models

// DeviceToken is the FCM registration token of a user (FCMTokens/{userId}).
type DeviceToken struct {
	Token string `json:"token" firestore:"token" validate:"required"`
}
