//go:build estd_assert_nomessage && !estd_assert_nofileline && !estd_assert_all && !estd_noassert

package debug

// Handlers are called without any context.
const Active = PolicyNoMessage
