package formatter

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/taglog-go/taglog/core"
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer retrieves a reset buffer from the pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns a buffer to the pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// AppendLine renders a complete log line into buf:
//
//	[tag ][function@file:line ]message\n
//
// The tag is omitted when empty and the caller locator when caller is the
// zero value. The severity is not rendered; it travels to the sink as its
// own argument and sinks decide how to present it.
func AppendLine(buf *bytes.Buffer, caller core.CallerInfo, tag, format string, args ...any) {
	if tag != "" {
		buf.WriteString(tag)
		buf.WriteByte(' ')
	}

	if caller.Defined {
		buf.WriteString(caller.Function)
		buf.WriteByte('@')
		buf.WriteString(filepath.Base(caller.File))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(caller.Line))
		buf.WriteByte(' ')
	}

	// No-argument calls skip fmt entirely
	if len(args) == 0 {
		buf.WriteString(format)
	} else {
		fmt.Fprintf(buf, format, args...)
	}

	buf.WriteByte('\n')
}

// MemRowLen is the number of data bytes rendered per AppendMemRow line.
const MemRowLen = 16

const hexDigits = "0123456789abcdef"

// AppendMemRow renders one row of a memory dump into buf: the hex value
// of each byte, padded to MemRowLen columns, followed by the ASCII
// rendering with '?' substituted for non-printable bytes. row must hold
// at most MemRowLen bytes.
func AppendMemRow(buf *bytes.Buffer, row []byte) {
	for i := 0; i < MemRowLen; i++ {
		if i < len(row) {
			b := row[i]
			buf.WriteByte(hexDigits[b>>4])
			buf.WriteByte(hexDigits[b&0xf])
			buf.WriteByte(' ')
		} else {
			buf.WriteString("   ")
		}
	}
	buf.WriteByte(' ')
	for _, b := range row {
		if b < 0x20 || b >= 0x7f {
			buf.WriteByte('?')
		} else {
			buf.WriteByte(b)
		}
	}
	buf.WriteByte('\n')
}
