package validators

import (
	"testing"

	"github.com/anonto42/boujee-triggers/internal/models"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Validate(models.Post{RecipientID: "bob"}))
	require.Error(t, v.Validate(models.Post{AuthorUsername: "alice"}))
	require.Error(t, v.Validate(models.Comment{AuthorUserName: "alice"}))
	require.NoError(t, v.Validate(models.LiveBoujee{UserID: "bob"}))
	require.Error(t, v.Validate(models.DeviceToken{}))
}
