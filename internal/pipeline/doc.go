// Package pipeline streams FASTA records through an Annotator on a pool of
// workers and hands the resulting tracks to a visit callback in input order.
//
// Annotator is the only contract; tests substitute fakes for it.
package pipeline
