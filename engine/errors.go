package engine

import "fmt"

type BuildErrorKind uint8

const (
	// The platform subsystem (or a service it needs) failed to start.
	KindSubsystem BuildErrorKind = iota
	KindWindow
	KindCanvas
)

func (k BuildErrorKind) String() string {
	switch k {
	case KindSubsystem:
		return "subsystem"
	case KindWindow:
		return "window"
	case KindCanvas:
		return "canvas"
	default:
		return fmt.Sprintf("BuildErrorKind(%d)", uint8(k))
	}
}

// BuildError reports which construction step of a Context failed.
type BuildError struct {
	Kind BuildErrorKind
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("failed to create %s: %s", e.Kind, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// LoadError reports an asset that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
