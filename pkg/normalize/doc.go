// Package normalize fills structurally-required-but-absent pieces of a
// form-template document without disturbing values that are already present.
// Persisted documents predate several layout features, so loads must tolerate
// missing substructures; saves run the same pass so the stored document is
// always fully populated.
//
// The defaulting rule is strict: a property that is present with a meaningful
// falsy value (showTitle: false, enabled: false) is preserved exactly.
// Defaults apply only to absent values, which is why optional booleans are
// pointers throughout the template package.
package normalize
