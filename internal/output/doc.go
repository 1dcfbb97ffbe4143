// Package output renders human-readable results for the command-line tools.
//
// [PrettyJSON] prints API responses in verbose mode; [WriteSummary] prints
// the timing report of a batch resize. Both write to any [io.Writer] so the
// commands can be tested against a buffer.
package output
