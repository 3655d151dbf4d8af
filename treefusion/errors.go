package treefusion

import "github.com/arbortree/higra/higraerr"

func errInvalidArgument(op, msg string) error {
	return higraerr.New(higraerr.InvalidArgument, op, msg)
}
