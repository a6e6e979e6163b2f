//go:build estd_noassert

package debug

import "testing"

func TestAssertDisabled(t *testing.T) {
	var c Counter
	defer Scope(c.Handle)()

	if !Assert(false, "false") {
		t.Error("expected disabled Assert to report true")
	}
	if c.Count != 0 {
		t.Fatalf("handler called with assertions disabled")
	}
	if Enabled || Active != PolicyDisabled {
		t.Fatalf("expected disabled policy, got %v", Active)
	}
}
