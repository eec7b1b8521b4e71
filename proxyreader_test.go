package clikit_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/vbauerster/clikit"
)

const content = `Lorem ipsum dolor sit amet, consectetur adipisicing elit, sed do
		eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim
		veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea
		commodo consequat. Duis aute irure dolor in reprehenderit in voluptate velit
		esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat
		cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id
		est laborum.`

type testReader struct {
	io.Reader
	called bool
}

func (r *testReader) Read(p []byte) (n int, err error) {
	r.called = true
	return r.Reader.Read(p)
}

type testWriterTo struct {
	*testReader
	called bool
}

func (wt *testWriterTo) WriteTo(w io.Writer) (n int64, err error) {
	wt.called = true
	return wt.Reader.(io.WriterTo).WriteTo(w)
}

func TestProxyReader(t *testing.T) {
	r := clikit.NewRegistry(clikit.WithOutput(io.Discard))
	h, err := r.Create(uint64(len(content)))
	if err != nil {
		t.Fatal(err)
	}

	reader := &testReader{strings.NewReader(content), false}
	pr, err := r.ProxyReader(h, reader)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	_, err = io.Copy(&buf, pr)
	if err != nil {
		t.Errorf("Error copying from reader: %+v\n", err)
	}

	if !reader.called {
		t.Error("Read not called")
	}

	if got := buf.String(); got != content {
		t.Errorf("Expected content: %s, got: %s\n", content, got)
	}

	assertCurrent(t, r, h, uint64(len(content)))
}

func TestProxyWriterTo(t *testing.T) {
	r := clikit.NewRegistry(clikit.WithOutput(io.Discard))
	h, _ := r.Create(uint64(len(content)))
	bar, err := r.Resolve(h)
	if err != nil {
		t.Fatal(err)
	}

	writerTo := &testWriterTo{&testReader{strings.NewReader(content), false}, false}

	var buf bytes.Buffer
	_, err = io.Copy(&buf, bar.ProxyReader(writerTo))
	if err != nil {
		t.Errorf("Error copying from reader: %+v\n", err)
	}

	if !writerTo.called {
		t.Error("WriteTo not called")
	}

	if got := buf.String(); got != content {
		t.Errorf("Expected content: %s, got: %s\n", content, got)
	}

	assertCurrent(t, r, h, uint64(len(content)))
}

func TestProxyUnknownHandle(t *testing.T) {
	r := clikit.NewRegistry(clikit.WithOutput(io.Discard))
	if _, err := r.ProxyReader(3, strings.NewReader(content)); err != clikit.ErrUnknownHandle {
		t.Errorf("Want: %v, Got: %v\n", clikit.ErrUnknownHandle, err)
	}
	if _, err := r.ProxyWriter(3, io.Discard); err != clikit.ErrUnknownHandle {
		t.Errorf("Want: %v, Got: %v\n", clikit.ErrUnknownHandle, err)
	}
}

func assertCurrent(t *testing.T, r *clikit.Registry, h clikit.Handle, want uint64) {
	t.Helper()
	bar, err := r.Resolve(h)
	if err != nil {
		t.Fatal(err)
	}
	st, err := bar.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Current != want {
		t.Errorf("Want current: %d, Got: %d\n", want, st.Current)
	}
}
