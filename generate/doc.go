// Package generate runs one player's generation pass end to end:
//
//	options → placement → clusters → unlock order → requirements → world → item pool → snapshot
//
// Every player owns its Context and random source; RunAll runs several
// players in parallel. Errors are tagged with ErrConfiguration (bad input)
// or ErrInvariant (an internal guarantee broke) while keeping the package
// sentinel reachable through errors.Is.
package generate
