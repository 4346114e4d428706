package quadpipe

import "io"

const (
	// DefaultBufferCapacity is the default size of a task LineBuffer.
	DefaultBufferCapacity = 4096
)

// LineBuffer batches the lines of one task and hands them to a shared writer in few calls.
//
// The buffer is pre-sized to its capacity. Before each append, if less than margin bytes are left, the content is
// flushed first. As long as no line is longer than margin, the buffer never grows.
type LineBuffer struct {
	w      io.Writer
	buf    []byte
	margin int
}

// NewLineBuffer creates a buffer flushing into w. capacity must be greater than margin.
func NewLineBuffer(w io.Writer, capacity, margin int) *LineBuffer {
	return &LineBuffer{
		w:      w,
		buf:    make([]byte, 0, capacity),
		margin: margin,
	}
}

// Append adds a line built by fn. fn follows the strconv Append convention: it appends to the given slice and returns
// the extended slice.
func (b *LineBuffer) Append(fn func([]byte) []byte) {
	if cap(b.buf)-len(b.buf) < b.margin {
		b.Flush()
	}
	b.buf = fn(b.buf)
}

// AppendLine adds an already formatted line.
func (b *LineBuffer) AppendLine(line []byte) {
	b.Append(func(dst []byte) []byte { return append(dst, line...) })
}

// Flush hands the content to the writer and resets the buffer. Write errors are left to the writer to report.
func (b *LineBuffer) Flush() {
	_, _ = b.w.Write(b.buf)
	b.buf = b.buf[:0]
}

// Len returns the number of buffered bytes.
func (b *LineBuffer) Len() int {
	return len(b.buf)
}

// Cap returns the buffer capacity.
func (b *LineBuffer) Cap() int {
	return cap(b.buf)
}
