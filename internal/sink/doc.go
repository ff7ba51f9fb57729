// Package sink is the host exposure registry that the binding generators
// feed into.
//
// The Sink stores mappings between exposure names (e.g. "some_packet",
// "tensor_3d_f") and the constructors and accessors synthesized for them. The
// generators treat it as write-only: registrations happen exactly once during
// application startup, and anything registered is invocable the moment the
// registration call returns.
//
// Name collisions fail fast. The generators do not deduplicate, so unique
// exposure names are the caller's invariant; the Sink turns a violation into
// an immediate startup error rather than silently overwriting.
package sink
