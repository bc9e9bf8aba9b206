package storage

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/faseed/internal/common"
	"github.com/Veraticus/faseed/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_FindFirstAccountByTypes(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.FindFirstAccountByTypes(ctx, model.AccountTypeChecking, model.AccountTypeSavings)
	assert.ErrorIs(t, err, common.ErrNotFound)

	for _, a := range []model.Account{
		{Name: "Visa", Type: "Credit Card", Balance: -3200},
		{Name: "Rainy Day", Type: model.AccountTypeSavings, Balance: 1500, Institution: "Ally"},
		{Name: "Everyday", Type: model.AccountTypeChecking, Balance: 800},
	} {
		_, err := store.InsertAccount(ctx, &a)
		require.NoError(t, err)
	}

	account, err := store.FindFirstAccountByTypes(ctx, model.AccountTypeChecking, model.AccountTypeSavings)
	require.NoError(t, err)
	assert.Equal(t, int64(2), account.ID)
	assert.Equal(t, "Rainy Day", account.Name)
	assert.Equal(t, "Ally", account.Institution)

	_, err = store.FindFirstAccountByTypes(ctx)
	assert.ErrorIs(t, err, ErrEmptySlice)
}

func TestSQLiteStorage_CountAccountsByTypeLike(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	now := time.Date(2025, 10, 19, 9, 30, 0, 0, time.UTC)
	_, err := store.InsertAccount(ctx, &model.Account{Name: "Work 401k", Type: "401k Retirement", Balance: 12000, LastUpdated: now})
	require.NoError(t, err)

	count, err := store.CountAccountsByTypeLike(ctx, "Retirement")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.CountAccountsByTypeLike(ctx, "Investment")
	require.NoError(t, err)
	assert.Zero(t, count)

	accounts, err := store.GetAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.True(t, now.Equal(accounts[0].LastUpdated))

	_, err = store.CountAccountsByTypeLike(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyString)
}

func TestSQLiteStorage_InsertAccount_SetsID(t *testing.T) {
	store := createTestStorage(t)

	account := &model.Account{Name: "Brokerage", Type: model.AccountTypeInvestment, Balance: 2100, Institution: "Fidelity"}
	id, err := store.InsertAccount(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Positive(t, id)
}
