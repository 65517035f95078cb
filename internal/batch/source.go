package batch

import (
	"io"
	"os"
	"strings"
)

// Source is a named stream of boards. Open is called once, from the worker
// that processes the source.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

func FileSource(path string) Source {
	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

func ReaderSource(name string, r io.Reader) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(r), nil
		},
	}
}

func StringSource(name, text string) Source {
	return ReaderSource(name, strings.NewReader(text))
}
