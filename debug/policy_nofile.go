//go:build !estd_assert_all && !estd_assert_nofileline && !estd_assert_nomessage && !estd_noassert

package debug

// Handlers receive line and test. This is the default.
const Active = PolicyNoFile
