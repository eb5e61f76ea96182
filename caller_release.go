//go:build taglog_release

package taglog

// withCaller selects the dispatch variant that captures the calling
// function and its file:line locator. Disabled in release builds.
const withCaller = false
