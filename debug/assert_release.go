//go:build estd_noassert

package debug

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = false

const Active = PolicyDisabled

// Assert is a no-op and always reports true.
func Assert(b bool, test string) bool { return true }
