package layout

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned for file extensions with no layout source.
var ErrUnsupported = errors.New("unsupported file extension")

// ErrorKind separates documents that could not be opened from documents
// whose content could not be parsed.
type ErrorKind string

const (
	KindOpen  ErrorKind = "open"
	KindParse ErrorKind = "parse"
)

// DocumentError fails a whole document. Page is -1 when the failure is not
// tied to one page.
type DocumentError struct {
	Kind ErrorKind
	Path string
	Page int
	Err  error
}

func (e *DocumentError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := "document " + string(e.Kind) + " error"
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Page >= 0 {
		base += fmt.Sprintf(" (page=%d)", e.Page)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *DocumentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func openError(err error) error {
	return &DocumentError{Kind: KindOpen, Page: -1, Err: err}
}

func parseError(page int, err error) error {
	return &DocumentError{Kind: KindParse, Page: page, Err: err}
}

// IsOpenError reports whether err means the document could not be opened.
func IsOpenError(err error) bool {
	return isKind(err, KindOpen)
}

// IsParseError reports whether err means the document could not be parsed.
func IsParseError(err error) bool {
	return isKind(err, KindParse)
}

func isKind(err error, kind ErrorKind) bool {
	var de *DocumentError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

// withPath stamps path onto a DocumentError anywhere in err's chain.
func withPath(err error, path string) error {
	var de *DocumentError
	if errors.As(err, &de) && de.Path == "" {
		de.Path = path
	}
	return err
}
