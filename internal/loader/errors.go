package loader

import "fmt"

// LoadError reports a transport or file failure. StatusCode is zero when no
// HTTP response was received.
type LoadError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *LoadError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("load %s: HTTP %d", e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("load %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("load %s failed", e.URL)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// ParseError reports a document that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse samples: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports valid JSON with the wrong shape: a top level that is not
// an array (Index -1), or an element that is not an object.
type SchemaError struct {
	Found string
	Index int
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid samples: top level must be an array, found %s", e.Found)
	}
	return fmt.Sprintf("invalid samples: element %d must be an object, found %s", e.Index, e.Found)
}
