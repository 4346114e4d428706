package quadpipe_test

import (
	"strings"
	"testing"

	"github.com/fogfactory/quadpipe"
	"github.com/maxatome/go-testdeep/td"
	"github.com/samber/lo"
)

// recorder keeps each write separately
type recorder struct {
	writes []string
}

func (r *recorder) Write(p []byte) (int, error) {
	r.writes = append(r.writes, string(p))
	return len(p), nil
}

func TestLineBuffer(t *testing.T) {
	t.Run("flushes_before_overflow", func(t *testing.T) {
		// Arrange
		rec := &recorder{}
		buf := quadpipe.NewLineBuffer(rec, 64, 16)
		line := []byte("123456789\n") // 10 bytes

		// Act
		for range 20 {
			buf.AppendLine(line)
			td.Cmp(t, buf.Cap(), 64, "buffer never grows")
		}
		buf.Flush()

		// Assert
		td.Cmp(t, strings.Join(rec.writes, ""), strings.Repeat(string(line), 20))
		for _, w := range rec.writes {
			td.CmpLte(t, len(w), 64)
		}
		// 64-16 = 48: a flush happens once 5 lines (50 bytes) are buffered
		td.Cmp(t, lo.Map(rec.writes, func(w string, _ int) int { return len(w) }), []int{50, 50, 50, 50})
		td.Cmp(t, buf.Len(), 0)
	})

	t.Run("append_formats_in_place", func(t *testing.T) {
		rec := &recorder{}
		buf := quadpipe.NewLineBuffer(rec, 64, 16)

		buf.Append(func(dst []byte) []byte { return append(dst, "a\n"...) })
		buf.Append(func(dst []byte) []byte { return append(dst, "b\n"...) })

		td.Cmp(t, buf.Len(), 4)
		td.CmpEmpty(t, rec.writes)
		buf.Flush()
		td.Cmp(t, rec.writes, []string{"a\nb\n"})
	})

	t.Run("empty_flush_into_sink_is_noop", func(t *testing.T) {
		rec := &recorder{}
		sink := quadpipe.NewSink(rec)
		buf := quadpipe.NewLineBuffer(sink, 64, 16)

		buf.Flush()
		buf.Flush()

		td.CmpEmpty(t, rec.writes)
		td.Cmp(t, sink.Writes(), 0)
	})
}
