package asciiart

import "fmt"

// ImageLoadError is returned when an image cannot be opened or decoded.
type ImageLoadError struct {
	Path string // "-" for standard input
	Err  error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("cannot read image %q: %v", e.Path, e.Err)
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// InvalidArgumentError reports a rendering parameter outside its allowed
// domain.
type InvalidArgumentError struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Name, e.Value, e.Reason)
}

// InvalidGridError means a grid row does not match the grid width.
type InvalidGridError struct {
	Row  int
	Want int
	Got  int
}

func (e *InvalidGridError) Error() string {
	return fmt.Sprintf("invalid grid: row %d has %d pixels, want %d", e.Row, e.Got, e.Want)
}
