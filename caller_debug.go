//go:build !taglog_release

package taglog

// withCaller selects the dispatch variant that captures the calling
// function and its file:line locator. Active outside release builds.
const withCaller = true
