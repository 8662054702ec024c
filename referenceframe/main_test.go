package referenceframe

import (
	"testing"

	"go.viam.com/frames/testutils"
)

func TestMain(m *testing.M) {
	testutils.VerifyTestMain(m)
}
