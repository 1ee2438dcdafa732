package core

import (
	"errors"
)

var ErrClosed = errors.New("already closed")
