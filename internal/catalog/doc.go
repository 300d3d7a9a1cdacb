// Package catalog holds the static fragment and rule tables the generator
// selects from. A Fragment is a chunk of Dart or YAML tied to one axis value
// and one target file; a Rule is a cross-axis exception that adds or
// suppresses fragments when a combination of axis values is present.
//
// The catalog is data, not behavior: selection lives in package resolve and
// assembly in package compose. Everything here is validated once at load
// time so that a malformed table fails fast instead of producing wrong
// output.
package catalog
