package render

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/samueljsb/gh-notifs/internal/pkg/fs"
)

// Sink is where a rendered listing ends up. Chosen before rendering; a
// failed run must never touch the sink.
type Sink interface {
	Write(content string) error
}

// NewSink writes to the given file path, or to out when the path is empty.
func NewSink(path string, out io.Writer) Sink {
	if path != "" {
		return &FileSink{Path: path, FS: fs.OS{}}
	}

	return &ConsoleSink{Out: out}
}

type ConsoleSink struct {
	Out io.Writer
}

func (s *ConsoleSink) Write(content string) error {
	_, err := fmt.Fprint(s.Out, content)
	return err
}

// FileSink fully overwrites the file on every run.
type FileSink struct {
	Path string
	FS   fs.Filesystem
}

func (s *FileSink) Write(content string) error {
	err := s.FS.WriteFile(s.Path, []byte(content), 0o644)
	if err != nil {
		return err
	}

	log.Info().Str("path", s.Path).Msg("output written")
	return nil
}
