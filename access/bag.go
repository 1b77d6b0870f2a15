package access

// Bag is a counting Inventory.
type Bag map[string]int

// NewBag returns a bag holding one of each item.
func NewBag(items ...string) Bag {
	b := make(Bag, len(items))
	for _, it := range items {
		b[it]++
	}
	return b
}

// Add collects n copies of item.
func (b Bag) Add(item string, n int) {
	b[item] += n
}

// HasAtLeast reports whether the bag holds count copies of item.
func (b Bag) HasAtLeast(item string, count int) bool {
	return b[item] >= count
}

// HasAll reports whether the bag holds every item.
func (b Bag) HasAll(items []string) bool {
	for _, it := range items {
		if b[it] < 1 {
			return false
		}
	}
	return true
}
