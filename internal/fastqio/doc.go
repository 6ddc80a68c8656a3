// Package fastqio loads raw read lines from disk and writes formatted
// records back out. It knows nothing about record shapes; see reformat.
package fastqio
