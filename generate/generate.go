package generate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/galdiuz/archipeladoku/cluster"
	"github.com/galdiuz/archipeladoku/dfs"
	"github.com/galdiuz/archipeladoku/grid"
	"github.com/galdiuz/archipeladoku/gridgraph"
	"github.com/galdiuz/archipeladoku/items"
	"github.com/galdiuz/archipeladoku/options"
	"github.com/galdiuz/archipeladoku/placement"
	"github.com/galdiuz/archipeladoku/region"
	"github.com/galdiuz/archipeladoku/schedule"
)

var (
	// ErrConfiguration tags failures caused by the player's options.
	ErrConfiguration = errors.New("generate: configuration error")

	// ErrInvariant tags failures of an internal guarantee.
	ErrInvariant = errors.New("generate: invariant violated")

	// ErrOriginCluster indicates that the origin block does not open a
	// cluster of exactly the initial allotment.
	ErrOriginCluster = errors.New("generate: origin cluster must match the initial allotment")
)

// Context is the state of one player's generation pass.
type Context struct {
	Player int
	// Players is the number of players in the whole generation.
	Players int
	Seed    int64
	Options options.Options
	Logger  *logrus.Entry
	// ID identifies the generation pass in logs. A nil ID is replaced on Run.
	ID uuid.UUID
}

// Result holds everything produced for one player.
type Result struct {
	Player       int
	Clusters     []*cluster.Cluster
	Layout       *gridgraph.GridGraph
	Order        *schedule.Order
	Initial      int
	Requirements map[int]int
	World        *region.World
	Pool         *items.ItemPool
	Snapshot     Snapshot
}

func (c *Context) logger() *logrus.Entry {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	base := c.Logger
	if base == nil {
		base = logrus.NewEntry(logrus.StandardLogger())
	}
	return base.WithFields(logrus.Fields{
		"player":     c.Player,
		"generation": c.ID.String(),
		"seed":       c.Seed,
	})
}

// Run executes the pass. Nothing is returned on error. ctx cancels cluster
// growth and the region graph check.
func (c *Context) Run(ctx context.Context) (*Result, error) {
	log := c.logger()
	opts := c.Options

	if err := opts.Validate(); err != nil {
		return nil, c.fail(log, err)
	}
	overlap, err := grid.DefaultOverlap(opts.BlockSize)
	if err != nil {
		return nil, c.fail(log, err)
	}
	anchors, err := placement.PositionBoards(opts.BlockSize, overlap, opts.NumberOfBoards)
	if err != nil {
		return nil, c.fail(log, err)
	}
	clusters, err := cluster.Group(ctx, opts.BlockSize, anchors, opts.BoardsPerCluster)
	if err != nil {
		return nil, c.fail(log, err)
	}
	initial := schedule.InitialUnlockCount(opts.BlockSize)
	if origin := cluster.FindOrigin(clusters); origin == nil || origin.Blocks.Size() != initial {
		return nil, c.fail(log, fmt.Errorf("%d free blocks: %w", initial, ErrOriginCluster))
	}
	layout, err := gridgraph.FromClusters(opts.BlockSize, clusters, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, c.fail(log, err)
	}
	if err := layout.Connected(); err != nil {
		return nil, c.fail(log, err)
	}
	log.WithFields(logrus.Fields{
		"boards":   len(anchors),
		"clusters": len(clusters),
		"initial":  initial,
		"width":    layout.Width,
	}).Debug("layout ready")

	rng := schedule.NewRand(c.Seed)
	order, err := schedule.Build(rng, clusters, schedule.Config{
		BlockSize:          opts.BlockSize,
		InitialCredits:     initial,
		InitialUnlockCount: initial,
		FillerCount:        initial,
	})
	if err != nil {
		return nil, c.fail(log, err)
	}
	blocks := order.Blocks()
	reqs := schedule.Requirements(clusters, blocks, initial)
	log.WithFields(logrus.Fields{
		"blocks":         len(blocks),
		"sentinels":      order.SentinelCount(),
		"maxRequirement": schedule.MaxRequirement(reqs),
	}).Debug("unlock order ready")

	world, err := region.Build(ctx, region.Input{
		BlockSize:          opts.BlockSize,
		Progression:        opts.Progression,
		Clusters:           clusters,
		Order:              blocks,
		InitialUnlockCount: initial,
	})
	if err != nil {
		return nil, c.fail(log, err)
	}
	pool, err := items.Pool(opts, blocks, initial, c.Players)
	if err != nil {
		return nil, c.fail(log, err)
	}
	if got, want := pool.Size(), world.LocationCount()-1; got != want {
		return nil, c.fail(log, fmt.Errorf("%d items for %d locations: %w", got, want, schedule.ErrInvariantViolation))
	}

	res := &Result{
		Player:       c.Player,
		Clusters:     clusters,
		Layout:       layout,
		Order:        order,
		Initial:      initial,
		Requirements: reqs,
		World:        world,
		Pool:         pool,
		Snapshot:     NewSnapshot(opts, clusters, blocks, rng.Uint32()),
	}
	log.WithFields(logrus.Fields{
		"regions":     len(world.Regions()),
		"connections": world.ConnectionCount(),
		"locations":   world.LocationCount(),
		"items":       pool.Size(),
	}).Info("generation finished")

	return res, nil
}

func (c *Context) fail(log *logrus.Entry, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.WithError(err).Warn("generation cancelled")
		return fmt.Errorf("player %d: %w", c.Player, err)
	}
	tag := ErrConfiguration
	if errors.Is(err, schedule.ErrInvariantViolation) ||
		errors.Is(err, region.ErrDuplicateLocation) ||
		errors.Is(err, dfs.ErrCycleDetected) ||
		errors.Is(err, gridgraph.ErrDisconnected) ||
		errors.Is(err, ErrOriginCluster) {
		tag = ErrInvariant
	}
	log.WithError(err).Error("generation failed")
	return fmt.Errorf("player %d: %w: %w", c.Player, tag, err)
}

// RunAll runs every context on its own goroutine. Results are indexed like
// ctxs; the first error in player order is returned. Cancelling ctx skips
// players that have not started.
func RunAll(ctx context.Context, ctxs []*Context) ([]*Result, error) {
	results := make([]*Result, len(ctxs))
	errs := make([]error, len(ctxs))

	var wg sync.WaitGroup
	for i, gc := range ctxs {
		i, gc := i, gc
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = gc.Run(ctx)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
