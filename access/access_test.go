package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/galdiuz/archipeladoku/access"
)

func TestRule_Eval(t *testing.T) {
	bag := access.NewBag("Block A4", "Block D1")
	bag.Add("Progressive Block", 3)

	cases := []struct {
		name string
		rule access.Rule
		want bool
	}{
		{"Always", access.Always(), true},
		{"ZeroValue", access.Rule{}, true},
		{"AtLeastMet", access.HasAtLeast("Progressive Block", 3), true},
		{"AtLeastShort", access.HasAtLeast("Progressive Block", 4), false},
		{"AtLeastZero", access.HasAtLeast("Progressive Block", 0), true},
		{"AllMet", access.HasAll("Block D1", "Block A4"), true},
		{"AllMissing", access.HasAll("Block A4", "Block G7"), false},
		{"AllEmpty", access.HasAll(), true},
		{"UnknownKind", access.Rule{Kind: access.Kind(99)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rule.Eval(bag))
		})
	}
}

func TestRule_Constructors(t *testing.T) {
	assert.Equal(t, access.KindAlways, access.HasAtLeast("x", -2).Kind)
	r := access.HasAll("b", "a")
	assert.Equal(t, []string{"a", "b"}, r.Items)
	assert.Equal(t, `HasAtLeast("Progressive Block", 2)`, access.HasAtLeast("Progressive Block", 2).String())
	assert.Equal(t, "HasAll(a, b)", r.String())
	assert.Equal(t, "Always", access.Always().String())
	assert.Equal(t, "HasAll(a, b, c, d, … 5 items)", access.HasAll("e", "d", "c", "b", "a").String())
}

// TestRule_Monotone checks that collecting more never revokes access.
func TestRule_Monotone(t *testing.T) {
	rules := []access.Rule{
		access.HasAtLeast("Progressive Block", 2),
		access.HasAll("Block A1", "Block A4"),
	}
	bag := access.Bag{}
	held := make([]bool, len(rules))
	for _, it := range []string{"Progressive Block", "Block A1", "Progressive Block", "Block A4", "Nothing"} {
		bag.Add(it, 1)
		for i, r := range rules {
			now := r.Eval(bag)
			if held[i] {
				assert.True(t, now, "rule %v revoked", r)
			}
			held[i] = now
		}
	}
	assert.Equal(t, []bool{true, true}, held)
}
