// Package cli wires together the Cobra commands for the reviewbot and
// batchresize binaries.
//
// Each command binds its flags, reads configuration, runs its pipeline and
// returns an exit code: 0 on success, 1 when the run fails, 2 for usage
// errors reported by Cobra.
package cli
