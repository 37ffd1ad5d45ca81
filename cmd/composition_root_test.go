package cmd_test

import (
	"log/slog"
	"testing"

	"fooddelivery/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_CreateJobs(t *testing.T) {
	newRoot := func(t *testing.T, values map[string]string) *cmd.CompositionRoot {
		t.Helper()
		config, err := cmd.ConfigFromEnv(env(values))
		require.NoError(t, err)
		root, err := cmd.NewCompositionRoot(config, slog.New(slog.DiscardHandler))
		require.NoError(t, err)
		t.Cleanup(func() { _ = root.Close() })
		return root
	}

	t.Run("should not schedule deliveries by default", func(t *testing.T) {
		root := newRoot(t, nil)

		assert.Empty(t, root.CreateJobs())
	})

	t.Run("should schedule deliveries when a cron expression is set", func(t *testing.T) {
		root := newRoot(t, map[string]string{"SCHEDULE_CRON": "0 */5 * * * *"})

		assert.Len(t, root.CreateJobs(), 1)
	})
}
