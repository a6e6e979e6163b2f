//go:build estd_assert_nofileline && !estd_assert_all && !estd_noassert

package debug

// Handlers receive the test only.
const Active = PolicyNoFileLine
