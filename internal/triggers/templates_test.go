package triggers_test

import (
	"testing"

	"github.com/anonto42/boujee-triggers/internal/models"
	"github.com/anonto42/boujee-triggers/internal/triggers"
	"github.com/stretchr/testify/require"
)

func TestPostPayload(t *testing.T) {
	cases := []struct {
		name  string
		post  models.Post
		title string
		body  string
	}{
		{
			name:  "Parent",
			post:  models.Post{AuthorUsername: "alice", IsParent: true},
			title: "Boujee for you!",
			body:  "alice just boujee'd you! Boujee them back!",
		},
		{
			name:  "ParentWinsOverPaired",
			post:  models.Post{AuthorUsername: "alice", IsParent: true, IsPaired: true},
			title: "Boujee for you!",
			body:  "alice just boujee'd you! Boujee them back!",
		},
		{
			name:  "Paired",
			post:  models.Post{AuthorUsername: "alice", IsPaired: true},
			title: "Your friend Boujee'd Back!",
			body:  "alice just boujee'd you back! Check out what they posted.",
		},
		{
			name:  "Chained",
			post:  models.Post{AuthorUsername: "alice"},
			title: "Your friend chained a Boujee!",
			body:  "alice just chained a boujee to yours! Check it out!",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := triggers.PostPayload("p1", tc.post)
			require.Equal(t, tc.title, p.Title)
			require.Equal(t, tc.body, p.Body)
			require.Equal(t, map[string]string{"postId": "p1"}, p.Data)
			require.Nil(t, p.Badge)
			require.Empty(t, p.Sound)
		})
	}
}

func TestDisplayOnlyPayloads(t *testing.T) {
	yes, no := true, false

	cases := []struct {
		name    string
		payload models.NotificationPayload
		title   string
		body    string
	}{
		{"Follower", triggers.FollowerPayload("Jane Doe"), "New Follower", "You have a new follower: Jane Doe"},
		{"Review", triggers.ReviewPayload(), "New Boujee", "You have a new Boujee"},
		{"Comment", triggers.CommentPayload("carol"), "New Comment", "carol commented on your post"},
		{"LiveAnonymous", triggers.LiveBoujeePayload(models.LiveBoujee{AuthorUsername: "alice", Anonymous: &yes}), "Billboard Boujee ", "Someone boujee'd you on your billboard!"},
		{"LiveUnsetIsAnonymous", triggers.LiveBoujeePayload(models.LiveBoujee{AuthorUsername: "alice"}), "Billboard Boujee ", "Someone boujee'd you on your billboard!"},
		{"LiveNamed", triggers.LiveBoujeePayload(models.LiveBoujee{AuthorUsername: "alice", Anonymous: &no}), "Billboard Boujee ", "alice boujee'd you on your billboard!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.title, tc.payload.Title)
			require.Equal(t, tc.body, tc.payload.Body)
			require.Nil(t, tc.payload.Data)
			require.NotNil(t, tc.payload.Badge)
			require.Equal(t, 1, *tc.payload.Badge)
			require.Equal(t, "default", tc.payload.Sound)
		})
	}
}

func TestFollowerDisplayName(t *testing.T) {
	require.Equal(t, "Jane Doe", models.User{FirstName: "Jane", LastName: "Doe"}.DisplayName())
	require.Equal(t, " Jane   Doe ", models.User{FirstName: " Jane ", LastName: " Doe "}.DisplayName())
}
