package services

import (
	"context"
	"testing"

	"github.com/reachforge/reachforge/ent/connectedaccount"
	"github.com/reachforge/reachforge/pkg/models"
	testdb "github.com/reachforge/reachforge/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAccountService(client.Client)
	ctx := context.Background()

	t.Run("create and fetch", func(t *testing.T) {
		acct, err := service.CreateAccount(ctx, models.CreateAccountRequest{
			OrganizationID:    "org-1",
			ProviderAccountID: "prov-abc",
			DisplayName:       "Jordan's account",
		})
		require.NoError(t, err)
		assert.Equal(t, connectedaccount.StatusPending, acct.Status)

		got, err := service.GetAccount(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, "prov-abc", got.ProviderAccountID)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := service.CreateAccount(ctx, models.CreateAccountRequest{ProviderAccountID: "p"})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateAccount(ctx, models.CreateAccountRequest{OrganizationID: "o"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("status transitions", func(t *testing.T) {
		acct, err := service.CreateAccount(ctx, models.CreateAccountRequest{
			OrganizationID:    "org-1",
			ProviderAccountID: "prov-def",
		})
		require.NoError(t, err)

		require.NoError(t, service.MarkConnected(ctx, acct.ID))
		got, err := service.GetAccount(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, connectedaccount.StatusConnected, got.Status)

		require.NoError(t, service.MarkError(ctx, acct.ID))
		got, err = service.GetAccount(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, connectedaccount.StatusError, got.Status)
	})

	t.Run("list by organization", func(t *testing.T) {
		accounts, err := service.ListAccounts(ctx, "org-1")
		require.NoError(t, err)
		assert.Len(t, accounts, 2)

		accounts, err = service.ListAccounts(ctx, "org-none")
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := service.GetAccount(ctx, "no-such-account")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, service.MarkConnected(ctx, "no-such-account"), ErrNotFound)
	})
}
