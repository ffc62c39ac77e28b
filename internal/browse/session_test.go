// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package browse_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookdex/bookdex/internal/browse"
	"github.com/bookdex/bookdex/internal/platform/apperr"
	"github.com/bookdex/bookdex/pkg/uuidv7"
)

func newTestManager(total int) (*browse.Manager, *fakeGateway) {
	gateway := newFakeGateway(total)
	return browse.NewManager(gateway, testQuietPeriod, time.Hour, testLogger()), gateway
}

func TestManager_CreateLoadsNewBooks(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(0)
	session := manager.Create()
	require.True(t, uuidv7.IsValid(session.ID))

	// The implicit empty submission resolves to the new-releases feed after
	// one quiet period.
	require.Eventually(t, func() bool {
		_, state := session.State()
		return len(state.Items) == 5
	}, time.Second, 10*time.Millisecond)

	rawQuery, state := session.State()
	assert.Empty(t, rawQuery)
	assert.Equal(t, browse.NewBooksIntent(), state.Intent)
	assert.False(t, state.HasMore())
}

func TestManager_QueryDrivesSearch(t *testing.T) {
	t.Parallel()

	manager, gateway := newTestManager(100)
	session := manager.Create()

	session.SubmitQuery("swift")

	require.Eventually(t, func() bool {
		_, state := session.State()
		return state.Intent.Kind == browse.IntentSearch && len(state.Items) == 10
	}, time.Second, 10*time.Millisecond)

	triggered := session.ReportVisible(context.Background(), 9)
	assert.True(t, triggered)

	_, state := session.State()
	assert.Len(t, state.Items, 20)
	assert.Equal(t, 2, state.CurrentPage)

	calls := gateway.calls()
	require.NotEmpty(t, calls)
	assert.Equal(t, searchCall{Query: "swift", Page: 2}, calls[len(calls)-1])
}

func TestManager_FailedLoadRetriesOnResubmit(t *testing.T) {
	t.Parallel()

	manager, gateway := newTestManager(100)
	gateway.failOnce[1] = true
	session := manager.Create()

	// First submission hits the transient failure and surfaces an error.
	session.SubmitQuery("swift")
	require.Eventually(t, func() bool {
		_, state := session.State()
		return state.ErrorMessage != ""
	}, time.Second, 10*time.Millisecond)

	// Re-submitting the identical query must not be swallowed by duplicate
	// suppression; the retry reaches the gateway and succeeds.
	session.SubmitQuery("swift")
	require.Eventually(t, func() bool {
		_, state := session.State()
		return len(state.Items) == 10
	}, time.Second, 10*time.Millisecond)

	_, state := session.State()
	assert.Empty(t, state.ErrorMessage)
	assert.Equal(t, browse.SearchIntent("swift"), state.Intent)
}

func TestManager_GetUnknownSession(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(0)

	_, err := manager.Get(uuidv7.New())
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "SESSION_EXPIRED", appErr.Code)
}

func TestManager_CloseRemovesSession(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(0)
	session := manager.Create()
	require.Equal(t, 1, manager.Count())

	require.NoError(t, manager.Close(session.ID))
	assert.Equal(t, 0, manager.Count())

	_, err := manager.Get(session.ID)
	assert.Error(t, err)
	assert.Error(t, manager.Close(session.ID))
}
