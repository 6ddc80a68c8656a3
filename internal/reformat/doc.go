// Package reformat turns loosely structured read lines into four-line
// FASTQ-like records. It is pure: no file or terminal I/O, and it never
// imports app, fastqio, or logging.
//
// Each line is normalized (all whitespace removed) and fed through a
// four-phase state machine. A line that does not fit the phase it lands in
// is dropped and the machine goes back to looking for a header on the next
// line. There is no lookahead and no backtracking.
package reformat
