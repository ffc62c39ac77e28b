// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package favorites_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookdex/bookdex/internal/favorites"
)

func TestNotifier_FanOut(t *testing.T) {
	t.Parallel()

	notifier := favorites.NewNotifier()

	first, cancelFirst := notifier.Subscribe()
	second, cancelSecond := notifier.Subscribe()
	defer cancelFirst()
	defer cancelSecond()
	require.Equal(t, 2, notifier.SubscriberCount())

	change := favorites.Change{ISBN13: "9781617291784", Favorite: true}
	notifier.Publish(change)

	assert.Equal(t, change, <-first)
	assert.Equal(t, change, <-second)
}

func TestNotifier_CancelClosesChannel(t *testing.T) {
	t.Parallel()

	notifier := favorites.NewNotifier()
	changes, cancel := notifier.Subscribe()

	cancel()
	assert.Equal(t, 0, notifier.SubscriberCount())

	_, open := <-changes
	assert.False(t, open)

	// Cancelling twice is harmless.
	cancel()
}

func TestNotifier_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	notifier := favorites.NewNotifier()
	changes, cancel := notifier.Subscribe()
	defer cancel()

	// Overfill the subscriber buffer; Publish must never block.
	for i := 0; i < 64; i++ {
		notifier.Publish(favorites.Change{ISBN13: "9781617291784", Favorite: i%2 == 0})
	}

	delivered := 0
	for {
		select {
		case <-changes:
			delivered++
		default:
			assert.Less(t, delivered, 64)
			assert.Greater(t, delivered, 0)
			return
		}
	}
}
