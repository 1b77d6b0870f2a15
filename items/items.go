package items

import (
	"errors"
	"fmt"

	"github.com/galdiuz/archipeladoku/grid"
)

// ErrUnknownItem indicates an id or name outside the item table.
var ErrUnknownItem = errors.New("items: unknown item")

// Classification tells the host how an item affects progression.
type Classification int

const (
	Filler Classification = iota
	Progression
	Useful
	Trap
)

// String returns the classification name.
func (c Classification) String() string {
	switch c {
	case Filler:
		return "filler"
	case Progression:
		return "progression"
	case Useful:
		return "useful"
	case Trap:
		return "trap"
	default:
		return fmt.Sprintf("classification(%d)", int(c))
	}
}

// Fixed item names.
const (
	SolveRandomCell       = "Solve Random Cell"
	Nothing               = "Nothing"
	ProgressiveBlock      = "Progressive Block"
	SolveSelectedCell     = "Solve Selected Cell"
	RemoveRandomCandidate = "Remove Random Candidate"
	EmojiTrap             = "Emoji Trap"
)

var fixedIDs = map[string]int{
	SolveRandomCell:       1,
	Nothing:               99,
	ProgressiveBlock:      101,
	SolveSelectedCell:     201,
	RemoveRandomCandidate: 202,
	EmojiTrap:             401,
}

// Item is one entry of the pool.
type Item struct {
	Name  string
	ID    int
	Class Classification
}

// String returns the item name.
func (it Item) String() string { return it.Name }

// Classify maps an item id to its classification.
func Classify(id int) (Classification, error) {
	switch {
	case id >= 1_000_000:
		return Progression, nil
	case id < 0:
	case id < 100:
		return Filler, nil
	case id < 200:
		return Progression, nil
	case id < 300:
		return Useful, nil
	case id >= 400 && id < 500:
		return Trap, nil
	}
	return 0, fmt.Errorf("id %d: %w", id, ErrUnknownItem)
}

// Named returns the fixed item called name.
func Named(name string) (Item, error) {
	id, ok := fixedIDs[name]
	if !ok {
		return Item{}, fmt.Errorf("%q: %w", name, ErrUnknownItem)
	}
	class, err := Classify(id)
	if err != nil {
		return Item{}, err
	}
	return Item{Name: name, ID: id, Class: class}, nil
}

// Block returns the shuffled-mode unlock item of block b.
func Block(b grid.Coord) Item {
	return Item{Name: grid.BlockItemName(b), ID: grid.BlockID(b), Class: Progression}
}

func mustNamed(name string) Item {
	it, err := Named(name)
	if err != nil {
		panic(err)
	}
	return it
}
