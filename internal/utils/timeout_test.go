package utils_test

import (
	"context"
	"testing"
	"time"

	"github.com/leaflane/storefront-platform/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDBTimeout(t *testing.T) {
	t.Run("Success - Default Deadline Applied", func(t *testing.T) {
		// Act
		ctx, cancel := utils.WithDBTimeout(context.Background())
		defer cancel()

		// Assert
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(utils.DefaultDBTimeout), deadline, time.Second)
	})

	t.Run("Success - Configured Override", func(t *testing.T) {
		// Arrange
		utils.SetDBTimeout(250 * time.Millisecond)
		defer utils.SetDBTimeout(utils.DefaultDBTimeout)

		// Act
		ctx, cancel := utils.WithDBTimeout(context.Background())
		defer cancel()

		// Assert
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(250*time.Millisecond), deadline, time.Second)
	})

	t.Run("Success - Non-Positive Override Is Ignored", func(t *testing.T) {
		// Arrange
		utils.SetDBTimeout(0)

		// Act
		ctx, cancel := utils.WithDBTimeout(context.Background())
		defer cancel()

		// Assert
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(utils.DefaultDBTimeout), deadline, time.Second)
	})
}
