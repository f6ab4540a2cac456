// Package catalog is the client side of the remote creature catalog.
//
// The catalog exposes two read-only endpoints: a paged listing that returns
// name and URL references for a window of entries, and a per-entry detail
// document. [Client] abstracts both so the box loader can be tested without
// a network; [HTTPClient] is the production implementation.
//
// Every failure crossing this package boundary is an
// [github.com/Iron-Ham/pokebox/internal/errors.NetworkError].
package catalog
