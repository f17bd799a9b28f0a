// Package binder substitutes rendered tables into template documents and
// writes the results.
//
// Every template is loaded and bound in memory by Prepare before anything
// is written. Commit then stages each document next to its output and only
// renames the staged files into place once all of them were written, so a
// failure while staging leaves every existing output untouched.
package binder
