package integration

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package when a server or client goroutine outlives the tests.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
