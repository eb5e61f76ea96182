// Package sink provides ready-made implementations of the core.Sink
// callback.
//
// The facade exposes exactly one sink slot; these constructors fill it:
//
//   - NewWriter writes timestamped lines to any io.Writer (Stderr is the
//     usual default).
//   - NewSlog and NewConsole bridge into log/slog, the latter with a
//     human-friendly console-slog handler.
//   - NewZap and NewZerolog forward into an existing zap or zerolog
//     logger, so an application with one of those stacks can funnel
//     facade messages through it.
//   - Counting wraps any sink with per-level delivery counters that can
//     be queried at runtime for monitoring.
//
// None of the adapters terminate the process for fatal messages; that
// policy is left to the application.
package sink
