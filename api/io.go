package api

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sarchlab/hackasm/core"
)

// Format selects how words are written.
type Format string

const (
	// FormatText writes one 16-character binary string per line.
	FormatText Format = "text"

	// FormatBinary writes each word as two big-endian bytes.
	FormatBinary Format = "binary"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatBinary:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q, want %q or %q",
			s, FormatText, FormatBinary)
	}
}

const maxLineLength = 1 << 20

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

type fileSource struct {
	path string
}

// NewFileSource reads lines from a file.
func NewFileSource(path string) LineSource {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string {
	return s.path
}

func (s *fileSource) Lines() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readLines(f)
}

type readerSource struct {
	name string
	r    io.Reader
}

// NewReaderSource reads lines from r, for example standard input.
func NewReaderSource(name string, r io.Reader) LineSource {
	return &readerSource{name: name, r: r}
}

// NewStringSource serves lines from an in-memory program text.
func NewStringSource(name, text string) LineSource {
	return &readerSource{name: name, r: strings.NewReader(text)}
}

func (s *readerSource) Name() string {
	return s.name
}

func (s *readerSource) Lines() ([]string, error) {
	return readLines(s.r)
}

// EncodeWords renders words in the given format.
func EncodeWords(words []string, format Format) ([]byte, error) {
	var buf bytes.Buffer

	for _, w := range words {
		switch format {
		case FormatText:
			buf.WriteString(w)
			buf.WriteByte('\n')
		case FormatBinary:
			v, err := core.ParseWord(w)
			if err != nil {
				return nil, err
			}
			buf.Write(binary.BigEndian.AppendUint16(nil, v))
		default:
			return nil, fmt.Errorf("unknown output format %q", format)
		}
	}

	return buf.Bytes(), nil
}

type writerSink struct {
	w      io.Writer
	format Format
}

// NewWriterSink writes words to w.
func NewWriterSink(w io.Writer, format Format) WordSink {
	return &writerSink{w: w, format: format}
}

func (s *writerSink) WriteWords(words []string) error {
	data, err := EncodeWords(words, s.format)
	if err != nil {
		return err
	}

	_, err = s.w.Write(data)
	return err
}

type fileSink struct {
	path   string
	format Format
}

// NewFileSink writes words to a file, replacing its content. The file is
// only created once all words are known.
func NewFileSink(path string, format Format) WordSink {
	return &fileSink{path: path, format: format}
}

func (s *fileSink) WriteWords(words []string) error {
	data, err := EncodeWords(words, s.format)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o644)
}
