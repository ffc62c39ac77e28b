// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package browse_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookdex/bookdex/internal/browse"
)

const testQuietPeriod = 50 * time.Millisecond

// collectIntents returns a sink channel plus the debouncer feeding it.
func newTestDebouncer(t *testing.T) (*browse.Debouncer, chan browse.Intent) {
	t.Helper()

	emissions := make(chan browse.Intent, 16)
	debouncer := browse.NewDebouncer(testQuietPeriod, func(intent browse.Intent) {
		emissions <- intent
	})
	t.Cleanup(debouncer.Close)
	return debouncer, emissions
}

// drainAfterQuiet waits comfortably past the quiet period and returns every
// intent emitted so far.
func drainAfterQuiet(emissions chan browse.Intent) []browse.Intent {
	time.Sleep(4 * testQuietPeriod)

	var got []browse.Intent
	for {
		select {
		case intent := <-emissions:
			got = append(got, intent)
		default:
			return got
		}
	}
}

func TestDebouncer_CollapsesRapidEdits(t *testing.T) {
	t.Parallel()

	debouncer, emissions := newTestDebouncer(t)

	for _, keystroke := range []string{"S", "Sw", "Swi", "Swif", "Swift"} {
		debouncer.Submit(keystroke)
		time.Sleep(5 * time.Millisecond)
	}

	got := drainAfterQuiet(emissions)
	require.Len(t, got, 1, "rapid edits must collapse into a single emission")
	assert.Equal(t, browse.SearchIntent("Swift"), got[0])
}

func TestDebouncer_EmptyInputRoutesToNewBooks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty string", raw: ""},
		{name: "whitespace only", raw: "   \t "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			debouncer, emissions := newTestDebouncer(t)
			debouncer.Submit(tc.raw)

			got := drainAfterQuiet(emissions)
			require.Len(t, got, 1)
			assert.Equal(t, browse.NewBooksIntent(), got[0])
		})
	}
}

func TestDebouncer_SuppressesDuplicateEmission(t *testing.T) {
	t.Parallel()

	debouncer, emissions := newTestDebouncer(t)

	debouncer.Submit("golang")
	got := drainAfterQuiet(emissions)
	require.Len(t, got, 1)

	// Re-settling on the same text (even with different surrounding
	// whitespace) resolves to the same intent and must not re-fire.
	debouncer.Submit("  golang ")
	got = drainAfterQuiet(emissions)
	assert.Empty(t, got)
}

func TestDebouncer_DistinctQueriesEmitSeparately(t *testing.T) {
	t.Parallel()

	debouncer, emissions := newTestDebouncer(t)

	debouncer.Submit("golang")
	first := drainAfterQuiet(emissions)
	require.Len(t, first, 1)

	debouncer.Submit("rust")
	second := drainAfterQuiet(emissions)
	require.Len(t, second, 1)
	assert.Equal(t, browse.SearchIntent("rust"), second[0])

	// Clearing the box after a search routes back to new releases.
	debouncer.Submit("")
	third := drainAfterQuiet(emissions)
	require.Len(t, third, 1)
	assert.Equal(t, browse.NewBooksIntent(), third[0])
}

func TestDebouncer_ResetLastAllowsReEmission(t *testing.T) {
	t.Parallel()

	debouncer, emissions := newTestDebouncer(t)

	debouncer.Submit("golang")
	require.Len(t, drainAfterQuiet(emissions), 1)

	// After forgetting the emission, the same text fires again — the retry
	// path for a query whose load failed.
	debouncer.ResetLast()
	debouncer.Submit("golang")

	got := drainAfterQuiet(emissions)
	require.Len(t, got, 1)
	assert.Equal(t, browse.SearchIntent("golang"), got[0])
}

func TestDebouncer_CloseDropsPendingEmission(t *testing.T) {
	t.Parallel()

	debouncer, emissions := newTestDebouncer(t)

	debouncer.Submit("golang")
	debouncer.Close()

	got := drainAfterQuiet(emissions)
	assert.Empty(t, got, "closing before the quiet period elapses cancels the emission")

	debouncer.Submit("rust")
	got = drainAfterQuiet(emissions)
	assert.Empty(t, got, "a closed debouncer ignores submissions")
}
