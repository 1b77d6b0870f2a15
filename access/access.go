// Package access describes access predicates as data. A Rule is a small
// tagged value (Always, HasAtLeast, HasAll) that the host's inventory engine
// evaluates; rules carry no closures, so nothing is captured late.
package access

import (
	"fmt"
	"sort"
	"strings"
)

// Kind tags the variant held by a Rule.
type Kind int

const (
	// KindAlways is satisfied by any inventory.
	KindAlways Kind = iota
	// KindHasAtLeast needs Count copies of Item.
	KindHasAtLeast
	// KindHasAll needs one of each of Items.
	KindHasAll
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindAlways:
		return "Always"
	case KindHasAtLeast:
		return "HasAtLeast"
	case KindHasAll:
		return "HasAll"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Inventory is the host's view of a player's collected items.
type Inventory interface {
	HasAtLeast(item string, count int) bool
	HasAll(items []string) bool
}

// Rule is an access predicate. The zero Rule is Always.
type Rule struct {
	Kind  Kind
	Item  string
	Count int
	Items []string
}

// Always returns the rule satisfied by every inventory.
func Always() Rule {
	return Rule{Kind: KindAlways}
}

// HasAtLeast returns a rule needing count copies of item. A non-positive
// count collapses to Always.
func HasAtLeast(item string, count int) Rule {
	if count <= 0 {
		return Always()
	}
	return Rule{Kind: KindHasAtLeast, Item: item, Count: count}
}

// HasAll returns a rule needing every listed item. The list is copied and
// sorted; an empty list is still a HasAll rule and always holds.
func HasAll(items ...string) Rule {
	sorted := append([]string(nil), items...)
	sort.Strings(sorted)
	return Rule{Kind: KindHasAll, Items: sorted}
}

// Eval evaluates the rule against inv. Unknown kinds never hold.
func (r Rule) Eval(inv Inventory) bool {
	switch r.Kind {
	case KindAlways:
		return true
	case KindHasAtLeast:
		return inv.HasAtLeast(r.Item, r.Count)
	case KindHasAll:
		return len(r.Items) == 0 || inv.HasAll(r.Items)
	default:
		return false
	}
}

// String renders the rule for logs and inspection output.
func (r Rule) String() string {
	switch r.Kind {
	case KindAlways:
		return "Always"
	case KindHasAtLeast:
		return fmt.Sprintf("HasAtLeast(%q, %d)", r.Item, r.Count)
	case KindHasAll:
		if len(r.Items) > 4 {
			return fmt.Sprintf("HasAll(%s, … %d items)", strings.Join(r.Items[:4], ", "), len(r.Items))
		}
		return fmt.Sprintf("HasAll(%s)", strings.Join(r.Items, ", "))
	default:
		return r.Kind.String()
	}
}
