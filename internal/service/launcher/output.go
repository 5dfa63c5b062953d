package launcher

import "bytes"

// viewerOutput holds at most limit bytes of one viewer stream.
// Bytes past the limit are discarded, and Write still reports them as consumed
// so os/exec keeps draining the pipe.
type viewerOutput struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func (o *viewerOutput) Write(p []byte) (int, error) {
	keep := p
	if room := o.limit - o.buf.Len(); len(keep) > room {
		o.truncated = true
		keep = keep[:max(room, 0)]
	}
	o.buf.Write(keep)
	return len(p), nil
}

func (o *viewerOutput) String() string { return o.buf.String() }
