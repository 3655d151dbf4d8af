package bipartite

import "github.com/arbortree/higra/higraerr"

func errInvalidArgument(op, msg string) error {
	return higraerr.New(higraerr.InvalidArgument, op, msg)
}

func errNonTerminating(op, msg string) error {
	return higraerr.New(higraerr.NonTerminating, op, msg)
}
