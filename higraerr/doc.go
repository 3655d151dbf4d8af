// Package higraerr defines the shared error taxonomy used across every
// component package (graph, tree, accumulate, componenttree, ...).
//
// What:
//
//   - Kind enumerates the four failure categories named by the library's
//     contract: InvalidArgument, OutOfRange, Unsupported, NonTerminating.
//   - Error carries a Kind, the failing operation's name, and an optional
//     wrapped cause so callers can use errors.Is/errors.As against both
//     the Kind and the underlying sentinel.
//
// Why:
//
//   - Every public algorithm reports failure the same way (spec taxonomy,
//     §7): no exceptions cross the package boundary, no partial output on
//     failure, and callers can switch on Kind without parsing messages.
//
// Errors:
//
//	All constructors in this package return *Error; there is nothing to
//	fail internally.
package higraerr
