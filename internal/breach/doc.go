// Package breach provides the best-effort lookup of known public breaches
// for an identifier.
//
// The lookup is an external collaborator, not part of the core rule engine:
// on any transport error, timeout, or non-success status it degrades to an
// empty record list instead of returning an error. The core cannot and must
// not distinguish "breach service down" from "no breaches found".
package breach
