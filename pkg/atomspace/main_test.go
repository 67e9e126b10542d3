package atomspace

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies that no stream producer goroutines outlive the tests.
// Every stream is either drained or closed; a leak here means a producer
// was left blocked on Put.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
