// Package template defines the form-template document: a bilingual,
// section-based description of a data-entry form together with its page
// layout and PDF styling. The document is plain data; invariants are
// enforced by the mutate, normalize, and validate packages rather than by
// the types themselves, so arbitrary in-memory states are representable and
// validation is the single gate before persistence.
package template
