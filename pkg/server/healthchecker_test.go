package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type downChecker struct{}

func (downChecker) Healthy(ctx context.Context) bool { return false }

func TestMultiHealthChecker(t *testing.T) {
	ctx := context.Background()

	t.Run("all healthy", func(t *testing.T) {
		hc := NewMultiHealthChecker(NewOkHealthChecker(), NewOkHealthChecker())
		assert.True(t, hc.Healthy(ctx))
	})

	t.Run("one unhealthy", func(t *testing.T) {
		hc := NewMultiHealthChecker(NewOkHealthChecker(), downChecker{})
		assert.False(t, hc.Healthy(ctx))
	})

	t.Run("no checkers", func(t *testing.T) {
		assert.True(t, NewMultiHealthChecker().Healthy(ctx))
	})
}
