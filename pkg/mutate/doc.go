// Package mutate provides the structural edits a template editor performs:
// adding, duplicating, removing, and reordering sections, fields, and table
// columns, plus dotted-path property updates. Every operation clones the
// input document and returns the edited copy, so callers can keep the
// previous value for undo or diffing.
//
// Operations assume an already-normalized document (see the normalize
// package) and are total: an out-of-range index or a boundary move returns
// the document unchanged rather than failing. The only error paths are the
// Update functions, which can be handed an unknown property path.
//
// Each operation keeps layout.sectionOrder a permutation of the section ids.
package mutate
