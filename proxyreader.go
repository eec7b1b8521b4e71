package clikit

import "io"

type proxyReader struct {
	io.ReadCloser
	bar *Bar
}

func (x proxyReader) Read(p []byte) (int, error) {
	n, err := x.ReadCloser.Read(p)
	if n > 0 {
		_ = x.bar.Increment(uint64(n))
	}
	return n, err
}

type proxyWriterTo struct {
	proxyReader
}

func (x proxyWriterTo) WriteTo(w io.Writer) (int64, error) {
	n, err := x.ReadCloser.(io.WriterTo).WriteTo(w)
	if n > 0 {
		_ = x.bar.Increment(uint64(n))
	}
	return n, err
}

// ProxyReader wraps r with metrics required for progress tracking. If r is
// 'unknown total/size' reader it's mandatory to call Finish after io.EOF.
// Panics if r is nil.
func (b *Bar) ProxyReader(r io.Reader) io.ReadCloser {
	if r == nil {
		panic("expected non nil io.Reader")
	}
	rc := toReadCloser(r)
	pr := proxyReader{rc, b}
	if _, ok := rc.(io.WriterTo); ok {
		return proxyWriterTo{pr}
	}
	return pr
}

func toReadCloser(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}
