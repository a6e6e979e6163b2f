//go:build estd_assert_all && !estd_noassert

package debug

// Handlers receive file, line and test.
const Active = PolicyAll
