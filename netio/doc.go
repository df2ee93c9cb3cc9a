// Package netio moves flow networks across process boundaries.
//
// The canonical wire format is the whitespace-token stream the solver has
// always consumed:
//
//	<edgeCount> <source> <sink>
//	<from> <to> <capacity>   (repeated edgeCount times)
//
// Tokens are separated by any run of whitespace, so the format is equally
// happy with one triple per line or the whole network on a single line.
// Vertex labels are arbitrary whitespace-free tokens.
//
// On top of the canonical format the package offers:
//
//   - WriteResult: the plain solved form, the total on the first line and
//     one "from to flow" line per original edge in deterministic order.
//   - WriteTable: a human-facing rendering of the same assignment.
//   - ReadNetworkYAML / WriteResultYAML: a structured YAML form for toolchains
//     that prefer self-describing documents.
//
// Readers only parse and build; they never validate reachability of the
// endpoints. That is the solver's contract, and it reports the misuse with
// its own typed errors.
package netio
