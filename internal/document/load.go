package document

import (
	"io"
	"os"
)

// StdinPath is the document path that reads standard input instead of a file.
const StdinPath = "-"

// Document is a fully buffered, segmented text document.
type Document struct {
	Path       string
	Size       int
	Lines      []string
	Paragraphs []Paragraph
}

// Load reads path fully and segments it. Every failure is an *Error that
// matches ErrDocumentUnavailable.
func Load(path string) (*Document, error) {
	var (
		content []byte
		err     error
	)
	if path == StdinPath {
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, &Error{Op: "read", Path: "stdin", Err: err}
		}
	} else {
		content, err = readFile(path)
		if err != nil {
			return nil, err
		}
	}
	return Parse(path, content)
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &Error{Op: "open", Path: path, Err: ErrIsDirectory}
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}
	return content, nil
}

// Parse builds a Document from content already in memory.
func Parse(path string, content []byte) (*Document, error) {
	name := path
	if name == StdinPath {
		name = ""
	}
	if !IsText(name, content) {
		return nil, &Error{Op: "decode", Path: path, Err: ErrNotText}
	}
	text, err := Decode(content)
	if err != nil {
		return nil, &Error{Op: "decode", Path: path, Err: err}
	}

	lines := SplitLines(text)
	return &Document{
		Path:       path,
		Size:       len(content),
		Lines:      lines,
		Paragraphs: Segment(lines),
	}, nil
}
