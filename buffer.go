package clog

import "sync"

// buffer is a growing byte slice used to compose one line so it reaches the
// sink in a single Write.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }
func (buf *buffer) writeColor(c Color)   { buf.b = c.appendTo(buf.b) }

// writeTag writes "[LEVEL]: ".
func (buf *buffer) writeTag(level Level) {
	buf.writeByte('[')
	buf.writeString(level.String())
	buf.writeString("]: ")
}

var bufPool = sync.Pool{
	New: func() any { return &buffer{b: make([]byte, 0, 256)} },
}

func getBuf() *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *buffer) {
	// Keep pool bounded; drop extremely large buffers
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}

// plainLine composes "[LEVEL]: msg stamp\n".
func plainLine(buf *buffer, level Level, msg, stamp string) {
	buf.writeTag(level)
	buf.writeString(msg)
	buf.writeString(stamp)
	buf.writeByte('\n')
}
