package session_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if a timer goroutine outlives its controller.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
