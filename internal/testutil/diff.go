// Package testutil holds small test-only helpers shared across this
// module's packages. It is never imported by non-test code.
package testutil

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/hqurve/tokmatch/result"
)

// DiffResult returns an empty string if want and got are structurally
// equal (per result.Equal), otherwise a unified diff of their spew dumps
// (result.Dump), for a readable assertion failure. Grounded on
// bufbuild-protocompile's own corpus-test comparison helper.
func DiffResult(want, got result.Result) string {
	if result.Equal(want, got) {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(result.Dump(want)),
		B:        difflib.SplitLines(result.Dump(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("result.Dump mismatch, and diffing it failed: %v", err)
	}
	return diff
}
