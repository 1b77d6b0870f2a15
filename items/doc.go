// Package items defines the item table and assembles a player's item pool.
//
// Item ids fall into ranges that fix their classification:
//
//	0..99       filler
//	100..199    progression
//	200..299    useful
//	400..499    trap
//	>=1000000   progression (per-block unlock items)
//
// Pool emits one progression item per non-initial block of the unlock order
// and fills the remaining location slots with ratio-driven fillers and
// "Nothing".
package items
