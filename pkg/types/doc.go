// Package types defines the shared vocabulary of the INI engine: the typed
// error taxonomy, encoding (BOM) identifiers, entry kinds, insert positions,
// and the parse operations exchanged between the parser and the document
// layer.
//
// Design goals:
//   - Typed errors with stable categories (io/encoding/parse/style) so
//     callers branch on intent rather than message text.
//   - Small value types; no behavior beyond formatting helpers.
//   - Lookup misses are not errors: document queries report them through
//     boolean or default-value returns, never through this taxonomy.
//
// This package has no dependencies beyond the standard library.
package types
