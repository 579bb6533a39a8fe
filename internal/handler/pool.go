package handler

import (
	"bytes"
	"sync"
)

const (
	initialBufferSize = 1024
	// catch responses with many lore lines can be large; keep only modest buffers around
	maxPooledBufferSize = 64 * 1024
)

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
