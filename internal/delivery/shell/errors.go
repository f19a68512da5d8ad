package shell

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrQuit is returned by HandleLine when the session should end.
var ErrQuit = errors.New("quit")

var (
	errTitleRequired = errors.New("title is required")
	errInvalidID     = errors.New("invalid todo id")
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidID, arg)
	}
	return id, nil
}
