package textedit

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"os"
	"strings"
)

// StdinName is the source name that selects standard input.
const StdinName = "-"

// Source yields the lines of one input, in order. Next returns false once the
// source is exhausted. A failed read yields an error Result in place of a line
// and reading carries on; a source that fails to open, or whose reads keep
// failing, yields its error Results and then reports exhaustion.
type Source interface {
	Name() string
	Next() (Result, bool)
	Close() error
}

// Open returns the Source for name, mapping [StdinName] to stdin.
func Open(name string, stdin io.Reader) Source {
	if name == StdinName {
		return Stdin(stdin)
	}
	return File(name)
}

// File makes a Source for the named file. The file is not opened until the
// first call to Next.
func File(name string) Source {
	return &fileSource{name: name}
}

// Stdin makes a Source reading from r. Closing it does not close r.
func Stdin(r io.Reader) Source {
	return &readerSource{name: StdinName, r: bufio.NewReader(r)}
}

type fileSource struct {
	name string
	f    *os.File
	rs   *readerSource
	done bool
}

func (s *fileSource) Name() string { return s.name }

func (s *fileSource) Next() (Result, bool) {
	if s.done {
		return Result{}, false
	}
	if s.rs == nil {
		f, err := os.Open(s.name)
		if err != nil {
			s.done = true
			return Result{Err: &SourceError{Name: s.name, Err: err}}, true
		}
		s.f = f
		s.rs = &readerSource{name: s.name, r: bufio.NewReader(f)}
	}
	r, ok := s.rs.Next()
	if !ok {
		s.done = true
	}
	return r, ok
}

func (s *fileSource) Close() error {
	s.done = true
	if s.f == nil {
		return nil
	}
	f := s.f
	s.f = nil
	return f.Close()
}

// maxReadFailures is how many reads in a row may fail before a source is
// abandoned. bufio.Reader hands back a read error only once, so a transient
// failure costs one line and the next pull resumes the stream.
const maxReadFailures = 2

type readerSource struct {
	name string
	r    *bufio.Reader
	done bool

	failures int
	// bytes read ahead of a failed read, they start the next line
	partial string
}

func (s *readerSource) Name() string { return s.name }

func (s *readerSource) Next() (Result, bool) {
	if s.done {
		return Result{}, false
	}
	line, err := s.r.ReadString('\n')
	line = s.partial + line
	s.partial = ""
	if err != nil && !errors.Is(err, io.EOF) {
		s.failures++
		if s.failures >= maxReadFailures {
			s.done = true
		} else {
			s.partial = line
		}
		return Result{Err: &SourceError{Name: s.name, Err: err}}, true
	}
	s.failures = 0
	if err != nil {
		s.done = true
		if line == "" {
			return Result{}, false
		}
		// unterminated final line, a lone trailing \r is content
		return Result{Line: line}, true
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return Result{Line: line}, true
}

func (s *readerSource) Close() error {
	s.done = true
	return nil
}

// Concat chains the results of srcs in order, closing each source once it is
// exhausted. Sources not reached because iteration stopped early are closed as
// well.
func Concat(srcs ...Source) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for i, src := range srcs {
			for {
				r, ok := src.Next()
				if !ok {
					break
				}
				if !yield(r) {
					closeAll(srcs[i:])
					return
				}
			}
			_ = src.Close()
		}
	}
}

func closeAll(srcs []Source) {
	for _, src := range srcs {
		_ = src.Close()
	}
}
