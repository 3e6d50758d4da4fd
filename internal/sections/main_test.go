package sections

import (
	"testing"

	"go.uber.org/goleak"
)

// Section loads fan out goroutines; none may outlive the call.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
