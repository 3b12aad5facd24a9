// Package native provides the Go containers for serpent values which
// have no direct Go counterpart: tuples, sets of arbitrary values and
// dicts with non string keys.
//
// Both [Set] and [Dict] key their members by [Key], a structural
// fingerprint, and both have an Equal method so that go-cmp compares
// them by content.
package native
