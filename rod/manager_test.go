//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/giftlist/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_RecyclesBrowserAfterMaxPages(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithRecycleAfter(3))
	require.NoError(t, err)
	defer manager.Close()

	first := manager.Browser()
	require.NotNil(t, first)

	for range 3 {
		manager.IncrementPageCount()
	}

	second := manager.Browser()
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
}

func TestBrowserManager_DoesNotRecycleBeforeMaxPages(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithRecycleAfter(5))
	require.NoError(t, err)
	defer manager.Close()

	first := manager.Browser()
	require.NotNil(t, first)

	manager.IncrementPageCount()
	manager.IncrementPageCount()

	assert.Same(t, first, manager.Browser())
}

func TestBrowserManager_Close_Idempotent(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager()
	require.NoError(t, err)

	require.NoError(t, manager.Close())
	require.NoError(t, manager.Close())
	assert.Zero(t, manager.LauncherPID())
}
