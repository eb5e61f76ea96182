// Package formatter renders log lines into pooled byte buffers.
//
// A line consists of an optional tag, an optional caller locator
// (function@file:line, present in debug builds), the printf-formatted
// message, and a trailing newline. Message formatting follows the fmt
// package's verbs; mismatched templates and arguments render fmt's usual
// %! diagnostics instead of failing.
//
// AppendMemRow produces the hex-and-ASCII rows used for memory dump
// logging, MemRowLen data bytes per row.
package formatter
