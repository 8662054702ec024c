// Package testutils holds helpers shared by the package tests.
package testutils

import (
	"go.uber.org/goleak"
)

// VerifyTestMain runs the tests of a package and fails it if goroutines are still running afterwards.
// Frame code is synchronous, so any leftover goroutine is a bug in the test or a listener.
func VerifyTestMain(m goleak.TestingM) {
	goleak.VerifyTestMain(m)
}
