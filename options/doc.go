// Package options holds the per-player option bundle, its defaults and
// validation, and YAML loading.
//
// Defaults:
//
//	block_size: 9                       boards_per_cluster: 5
//	number_of_boards: 5                 difficulty: easy
//	progression: shuffled               location_scouting: manual
//	solve_selected_cell_ratio: 100      solve_random_cell_ratio: 150
//	remove_random_candidate_ratio: 300  emoji_trap_ratio: 0
//	pre_fill_nothings_percent: 50
//
// Errors:
//
//   - ErrInvalidOption: a value outside its range.
//   - ErrUnknownProgression: progression other than fixed or shuffled.
//   - ErrUnknownChoice: an unknown difficulty or location scouting value.
package options
