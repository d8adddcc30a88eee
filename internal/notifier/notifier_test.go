package notifier

import (
	"testing"

	"github.com/anonto42/boujee-triggers/internal/models"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	t.Run("DataOnly", func(t *testing.T) {
		msg := BuildMessage("tok", models.NotificationPayload{
			Title: "Boujee for you!",
			Body:  "alice just boujee'd you! Boujee them back!",
			Data:  map[string]string{"postId": "p1"},
		})

		require.Equal(t, "tok", msg.Token)
		require.Equal(t, "Boujee for you!", msg.Notification.Title)
		require.Equal(t, "alice just boujee'd you! Boujee them back!", msg.Notification.Body)
		require.Equal(t, map[string]string{"postId": "p1"}, msg.Data)
		require.Nil(t, msg.APNS)
		require.Nil(t, msg.Android)
	})

	t.Run("BadgeAndSound", func(t *testing.T) {
		badge := 1
		msg := BuildMessage("tok", models.NotificationPayload{
			Title: "New Follower",
			Body:  "You have a new follower: Jane Doe",
			Badge: &badge,
			Sound: "default",
		})

		require.Nil(t, msg.Data)
		require.NotNil(t, msg.APNS)
		require.Equal(t, 1, *msg.APNS.Payload.Aps.Badge)
		require.Equal(t, "default", msg.APNS.Payload.Aps.Sound)
		require.Equal(t, "default", msg.Android.Notification.Sound)
	})
}
