// Package box pages through the catalog thirty entries at a time.
//
// A [Loader] turns a box number into a fully populated page of
// [DecoratedEntry] values, fetching every entry's detail document in
// parallel and failing the whole page if any single fetch fails.
//
// [State] is the viewer's state machine. Its transitions are pure: they
// return a new State and, when a fetch has to start, a [Request] tagged with
// a generation number. Results are applied with [State.Resolve] or
// [State.Fail], which ignore any Request that has since been superseded.
package box
