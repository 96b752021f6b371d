//go:build e2e && unix

package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuitKey(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Search..."), "Should show the placeholder")

	require.NoError(t, tf.SendKeys(KeyQuit))
	exited, err := tf.Wait(2 * time.Second)
	require.True(t, exited, "app did not exit after q")
	require.NoError(t, err)
}

func TestQIsTypedWhileEditingAndCtrlCQuits(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	require.NoError(t, tf.SendKeys(KeyType))
	require.NoError(t, tf.SendKeys(KeyQuit))
	exited, _ := tf.Wait(500 * time.Millisecond)
	require.False(t, exited, "q must be typed into the input")

	require.NoError(t, tf.SendKeys(KeyCtrlC))
	exited, _ = tf.Wait(2 * time.Second)
	require.True(t, exited, "app did not exit after ctrl+c")
}
