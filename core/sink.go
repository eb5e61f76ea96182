package core

// Sink receives every message that passed both the compile-time and the
// runtime severity threshold. line contains the rendered message followed
// by a line terminator; n is the number of bytes before that terminator,
// so a sink can strip or replace it. The sink may rewrite bytes of line
// in place, but must not retain the slice after returning: the dispatcher
// recycles the buffer for later messages.
type Sink func(lvl Level, line []byte, n int)
