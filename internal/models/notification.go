package models

// NotificationPayload is built per dispatch and never persisted.
type NotificationPayload struct {
	Title string
	Body  string
	Badge *int
	Sound string
	Data  map[string]string
}
