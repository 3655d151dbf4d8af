package graph

import (
	"fmt"

	"github.com/arbortree/higra/higraerr"
)

func errOutOfRange(op string, id int) error {
	return higraerr.New(higraerr.OutOfRange, op, fmt.Sprintf("id %d out of range", id))
}

func errInvalidArgument(op, msg string) error {
	return higraerr.New(higraerr.InvalidArgument, op, msg)
}

func errUnsupported(op, msg string) error {
	return higraerr.New(higraerr.Unsupported, op, msg)
}
