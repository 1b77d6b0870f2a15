package items

import (
	"fmt"
	"math/rand"

	"github.com/galdiuz/archipeladoku/grid"
	"github.com/galdiuz/archipeladoku/options"
	"github.com/galdiuz/archipeladoku/schedule"
)

// Weight is a filler name and its draw weight.
type Weight struct {
	Name   string
	Weight int
}

// Count is a filler name and how many copies the pool holds.
type Count struct {
	Name  string
	Count int
}

// ItemPool is the full set of items a player contributes.
type ItemPool struct {
	// Progression holds one unlock item per non-initial block, in order.
	Progression []Item
	// Fillers holds the filler counts in draw order.
	Fillers []Count
	// PreFill holds the Nothing items placed before the main fill.
	PreFill []Item
}

// Items returns the progression items followed by the fillers that are not
// pre-filled.
func (p *ItemPool) Items() []Item {
	out := append([]Item(nil), p.Progression...)
	held := len(p.PreFill)
	for _, f := range p.Fillers {
		it := mustNamed(f.Name)
		for i := 0; i < f.Count; i++ {
			if f.Name == Nothing && held > 0 {
				held--
				continue
			}
			out = append(out, it)
		}
	}
	return out
}

// Size returns the number of items including pre-fill.
func (p *ItemPool) Size() int {
	return len(p.Items()) + len(p.PreFill)
}

// FillerSlots is the number of locations left after the progression items:
// the initial blocks, one per board, and one per row and column.
func FillerSlots(blockSize, boards, initial int) int {
	return initial + boards + 2*boards*blockSize
}

// Pool assembles the item pool. order is the sentinel-free unlock order and
// initial the number of leading blocks granted for free.
func Pool(opts options.Options, order []grid.Coord, initial, players int) (*ItemPool, error) {
	if initial < 0 || initial > len(order) {
		return nil, fmt.Errorf("Pool: initial=%d of %d blocks: %w", initial, len(order), options.ErrInvalidOption)
	}

	p := &ItemPool{}
	for _, b := range order[initial:] {
		switch opts.Progression {
		case options.ProgressionFixed:
			p.Progression = append(p.Progression, mustNamed(ProgressiveBlock))
		case options.ProgressionShuffled:
			p.Progression = append(p.Progression, Block(b))
		default:
			return nil, fmt.Errorf("Pool: %q: %w", opts.Progression, options.ErrUnknownProgression)
		}
	}

	slots := FillerSlots(opts.BlockSize, opts.NumberOfBoards, initial)
	// ratios are percent of the board count
	ratios := []struct {
		name    string
		percent int
	}{
		{SolveSelectedCell, opts.SolveSelectedCellRatio},
		{SolveRandomCell, opts.SolveRandomCellRatio},
		{RemoveRandomCandidate, opts.RemoveRandomCandidateRatio},
		{EmojiTrap, opts.EmojiTrapRatio},
	}
	for _, r := range ratios {
		n := min(opts.NumberOfBoards*r.percent/100, slots)
		if n > 0 {
			p.Fillers = append(p.Fillers, Count{Name: r.name, Count: n})
			slots -= n
		}
	}
	if slots > 0 {
		p.Fillers = append(p.Fillers, Count{Name: Nothing, Count: slots})
		if players > 1 {
			held := slots * opts.PreFillNothingsPercent / 100
			for i := 0; i < held; i++ {
				p.PreFill = append(p.PreFill, mustNamed(Nothing))
			}
		}
	}

	return p, nil
}

// NothingWeight is the draw weight of Nothing: large for big boards, reduced
// by the helpful filler ratios, never negative.
func NothingWeight(opts options.Options) int {
	w := opts.BlockSize*200 + 100 -
		opts.SolveSelectedCellRatio -
		opts.SolveRandomCellRatio -
		opts.RemoveRandomCandidateRatio
	return max(0, w)
}

// FillerWeights returns the draw weights for extra filler items. When every
// weight is zero, Nothing gets weight 1.
func FillerWeights(opts options.Options) []Weight {
	ws := []Weight{
		{SolveSelectedCell, opts.SolveSelectedCellRatio},
		{SolveRandomCell, opts.SolveRandomCellRatio},
		{RemoveRandomCandidate, opts.RemoveRandomCandidateRatio},
		{EmojiTrap, opts.EmojiTrapRatio},
		{Nothing, NothingWeight(opts)},
	}
	for _, w := range ws {
		if w.Weight > 0 {
			return ws
		}
	}
	ws[len(ws)-1].Weight = 1
	return ws
}

// FillerName draws one filler name from weights.
func FillerName(rng *rand.Rand, weights []Weight) string {
	ws := make([]int64, len(weights))
	for i, w := range weights {
		ws[i] = int64(max(0, w.Weight))
	}
	idx, ok := schedule.PickWeighted(rng, ws)
	if !ok {
		return Nothing
	}
	return weights[idx].Name
}
