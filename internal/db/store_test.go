package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/minaret/internal/model"
)

// testContactMessages runs against a live Postgres; see TestStoreIntegration.
func testContactMessages(t *testing.T, store Store) {
	t.Run("Users", func(t *testing.T) {
		name := "Imam Office"
		id, err := store.CreateUser("office+it@example.org", "hashed", &name)
		require.NoError(t, err)
		assert.Greater(t, id, 0)

		u, err := store.GetUserByEmail("office+it@example.org")
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)

		_, err = store.GetUserByEmail("nobody@example.org")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("Contact Messages", func(t *testing.T) {
		phone := "+92 300 0000000"
		msg := &model.ContactMessage{
			Name:       "Bilal",
			Email:      "bilal@example.com",
			Phone:      &phone,
			Subject:    "Nikah booking",
			Message:    "Is the hall free on Saturday?",
			RemoteAddr: "127.0.0.1",
		}
		require.NoError(t, store.CreateContactMessage(msg))
		assert.Greater(t, msg.ID, 0)
		assert.False(t, msg.CreatedAt.IsZero())

		got, err := store.GetContactMessage(msg.ID)
		require.NoError(t, err)
		assert.Equal(t, "Nikah booking", got.Subject)
		require.NotNil(t, got.Phone)
		assert.Nil(t, got.AttachmentURL)

		list, err := store.ListContactMessages(10, 0)
		require.NoError(t, err)
		require.NotEmpty(t, list)
		assert.Equal(t, msg.ID, list[0].ID)
	})
}
