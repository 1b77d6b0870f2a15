package schedule

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/galdiuz/archipeladoku/cluster"
	"github.com/galdiuz/archipeladoku/grid"
)

var (
	// ErrNoClusters indicates an empty cluster set.
	ErrNoClusters = errors.New("schedule: no clusters to schedule")

	// ErrNeedRandSource indicates a nil random source.
	ErrNeedRandSource = errors.New("schedule: rng is required")

	// ErrInvariantViolation indicates that no cluster was affordable while
	// clusters remained.
	ErrInvariantViolation = errors.New("schedule: no affordable cluster")
)

const methodBuild = "Build"

// Config carries the budget parameters of one schedule.
type Config struct {
	// BlockSize sizes the per-board reward.
	BlockSize int
	// InitialCredits is the starting allotment.
	InitialCredits int
	// InitialUnlockCount is the number of leading blocks granted for free;
	// filler sentinels enter the pool once this many entries are emitted.
	InitialUnlockCount int
	// FillerCount is the number of sentinels mixed into the order.
	FillerCount int
}

// Reward is the credit paid back for cashing in a cluster of boards: one
// board check plus one check per row and column of every board.
func Reward(boards, blockSize int) int {
	return boards * (1 + 2*blockSize)
}

// InitialUnlockCount returns the free allotment: one board's worth of
// blocks, which is exactly the origin cluster built by cluster.Group.
func InitialUnlockCount(blockSize int) int {
	return blockSize
}

// Order is the delivery order of blocks, with filler sentinels mixed in.
type Order struct {
	Entries []grid.Coord
}

// Blocks returns the order without sentinels.
func (o *Order) Blocks() []grid.Coord {
	out := make([]grid.Coord, 0, len(o.Entries))
	for _, c := range o.Entries {
		if !c.IsSentinel() {
			out = append(out, c)
		}
	}
	return out
}

// SentinelCount returns how many filler sentinels the order holds.
func (o *Order) SentinelCount() int {
	n := 0
	for _, c := range o.Entries {
		if c.IsSentinel() {
			n++
		}
	}
	return n
}

// pending is scheduler state for a cluster that has not been cashed in.
type pending struct {
	cluster     *cluster.Cluster
	uncommitted []grid.Coord
	reward      int
}

// Build computes the unlock order for clusters.
// Complexity: O(k·B log B) for k clusters and B blocks.
func Build(rng *rand.Rand, clusters []*cluster.Cluster, cfg Config) (*Order, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNeedRandSource)
	}
	if len(clusters) == 0 {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNoClusters)
	}

	pool := cluster.Union(clusters)
	active := make([]*pending, 0, len(clusters))
	for _, c := range sortedByID(clusters) {
		active = append(active, &pending{cluster: c, reward: Reward(len(c.Boards), cfg.BlockSize)})
	}

	fillers := grid.Sentinels(cfg.FillerCount)
	injected := len(fillers) == 0
	credits := cfg.InitialCredits
	entries := make([]grid.Coord, 0, pool.Size()+len(fillers))

	for len(active) > 0 {
		for _, p := range active {
			p.uncommitted = p.uncommitted[:0]
			for _, b := range p.cluster.SortedBlocks() {
				if pool.Has(b) {
					p.uncommitted = append(p.uncommitted, b)
				}
			}
		}

		idx, err := pickTarget(rng, active, credits)
		if err != nil {
			return nil, fmt.Errorf("%s: credits=%d, %d clusters left: %w", methodBuild, credits, len(active), err)
		}
		target := active[idx]
		active = append(active[:idx], active[idx+1:]...)

		spare := credits - len(target.uncommitted)
		candidates := outside(pool, target.cluster)
		// credits left after the draw must still cash in the rest by id
		limit := min(spare, len(candidates), max(0, spare+target.reward-need(active, pool, target.cluster)))
		extra := rng.Intn(limit + 1)
		rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
		drawn := candidates[:extra]

		batch := make([]grid.Coord, 0, len(target.uncommitted)+extra)
		batch = append(batch, target.uncommitted...)
		batch = append(batch, drawn...)
		rng.Shuffle(len(batch), func(i, j int) { batch[i], batch[j] = batch[j], batch[i] })
		entries = append(entries, batch...)
		for _, b := range batch {
			pool.Remove(b)
		}

		credits = spare + target.reward - extra

		if !injected && len(entries) >= cfg.InitialUnlockCount {
			for _, f := range fillers {
				pool.Put(f)
			}
			injected = true
		}
	}

	if !injected {
		for _, f := range fillers {
			pool.Put(f)
		}
	}
	entries = append(entries, grid.SortedSet(pool)...)

	return &Order{Entries: entries}, nil
}

// pickTarget weighs the active clusters and selects one. The origin cluster
// is taken outright whenever it is affordable.
func pickTarget(rng *rand.Rand, active []*pending, credits int) (int, error) {
	weights := make([]int64, len(active))
	for i, p := range active {
		u := len(p.uncommitted)
		switch {
		case u > credits:
			weights[i] = 0
		case p.cluster.HasOrigin():
			return i, nil
		default:
			weights[i] = int64(credits - u + 1)
		}
	}
	idx, ok := PickWeighted(rng, weights)
	if !ok {
		return 0, ErrInvariantViolation
	}
	return idx, nil
}

// outside returns the pool members not covered by c, sorted.
func outside(pool mapset.Set[grid.Coord], c *cluster.Cluster) []grid.Coord {
	out := make([]grid.Coord, 0, pool.Size())
	pool.Each(func(b grid.Coord) {
		if !c.Contains(b) {
			out = append(out, b)
		}
	})
	grid.SortCoords(out)
	return out
}

// need returns the fewest credits that cash in every active cluster in id
// order with no extra draws, once the blocks of done are committed.
func need(active []*pending, pool mapset.Set[grid.Coord], done *cluster.Cluster) int {
	counted := mapset.New[grid.Coord]()
	worst, balance := 0, 0
	for _, p := range active {
		p.cluster.Blocks.Each(func(b grid.Coord) {
			if pool.Has(b) && !done.Contains(b) && !counted.Has(b) {
				counted.Put(b)
				balance--
			}
		})
		worst = max(worst, -balance)
		balance += p.reward
	}
	return worst
}

func sortedByID(clusters []*cluster.Cluster) []*cluster.Cluster {
	out := append([]*cluster.Cluster(nil), clusters...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
