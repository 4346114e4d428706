/*
Package equation holds the pure collaborators of the quadpipe pipeline: coefficient parsing, the quadratic solver and the
line formatting used for both results and diagnostics.

Nothing in this package keeps state or performs I/O. Formatting functions follow the strconv Append convention: they
append to a caller owned slice and return the extended slice, so a pipeline task can format straight into its own
buffer.
*/

package equation
