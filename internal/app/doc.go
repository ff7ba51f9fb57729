// Package app wires the binding generators, the exposure sink, and the
// manifest loader into a single application instance.
//
// All generation happens exactly once, inside NewApp, before any caller can
// observe the sink. A configuration error at this stage (a non-introspectable
// record, a name collision, a manifest mismatch) is fatal: the app panics and
// no partial registration set is ever usable.
package app
