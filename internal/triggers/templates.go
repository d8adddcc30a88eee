package triggers

import (
	"fmt"

	"github.com/anonto42/boujee-triggers/internal/models"
)

// anonymousName replaces the author of an anonymous billboard post.
const anonymousName = "Someone"

const defaultSound = "default"

func badgeOne() *int {
	one := 1
	return &one
}

// PostPayload selects the post-created template from the post's flavor.
// Only this payload carries data: the id of the post.
func PostPayload(postID string, post models.Post) models.NotificationPayload {
	var title, body string
	switch post.Kind() {
	case models.PostKindNew:
		title = "Boujee for you!"
		body = fmt.Sprintf("%s just boujee'd you! Boujee them back!", post.AuthorUsername)
	case models.PostKindPairedBack:
		title = "Your friend Boujee'd Back!"
		body = fmt.Sprintf("%s just boujee'd you back! Check out what they posted.", post.AuthorUsername)
	default:
		title = "Your friend chained a Boujee!"
		body = fmt.Sprintf("%s just chained a boujee to yours! Check it out!", post.AuthorUsername)
	}

	return models.NotificationPayload{
		Title: title,
		Body:  body,
		Data:  map[string]string{"postId": postID},
	}
}

func FollowerPayload(followerName string) models.NotificationPayload {
	return models.NotificationPayload{
		Title: "New Follower",
		Body:  "You have a new follower: " + followerName,
		Badge: badgeOne(),
		Sound: defaultSound,
	}
}

func ReviewPayload() models.NotificationPayload {
	return models.NotificationPayload{
		Title: "New Boujee",
		Body:  "You have a new Boujee",
		Badge: badgeOne(),
		Sound: defaultSound,
	}
}

func CommentPayload(authorUserName string) models.NotificationPayload {
	return models.NotificationPayload{
		Title: "New Comment",
		Body:  authorUserName + " commented on your post",
		Badge: badgeOne(),
		Sound: defaultSound,
	}
}

// LiveBoujeePayload names the author only when the post is explicitly not anonymous.
func LiveBoujeePayload(live models.LiveBoujee) models.NotificationPayload {
	name := anonymousName
	if live.RevealsAuthor() {
		name = live.AuthorUsername
	}
	return models.NotificationPayload{
		Title: "Billboard Boujee ",
		Body:  name + " boujee'd you on your billboard!",
		Badge: badgeOne(),
		Sound: defaultSound,
	}
}
