// Package token provides the low level text primitives of the serpent
// format: a backtracking [Reader] over the input, position reporting for
// error messages, and the quoting and number formatting rules shared by
// every printer.
package token
