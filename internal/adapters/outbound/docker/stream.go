package docker

import (
	"io"
	"sync"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/pkg/stdcopy"
)

// stream adapts a hijacked attach connection to lifecycle.Stream.
// Containers without a TTY multiplex stdout and stderr, so their output
// is demultiplexed into a pipe.
type stream struct {
	resp      types.HijackedResponse
	reader    io.Reader
	closeOnce sync.Once
}

func newStream(resp types.HijackedResponse, tty bool) *stream {
	s := &stream{
		resp:   resp,
		reader: resp.Reader,
	}

	if !tty {
		pr, pw := io.Pipe()

		go func() {
			_, err := stdcopy.StdCopy(pw, pw, resp.Reader)
			pw.CloseWithError(err)
		}()

		s.reader = pr
	}

	return s
}

func (s *stream) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

func (s *stream) Write(p []byte) (int, error) {
	return s.resp.Conn.Write(p)
}

func (s *stream) Close() error {
	s.closeOnce.Do(func() {
		s.resp.Close()
	})

	return nil
}
