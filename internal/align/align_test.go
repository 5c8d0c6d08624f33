package align

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/domdist/internal/cost"
	"github.com/specialistvlad/domdist/internal/element"
	"github.com/specialistvlad/domdist/internal/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDOM(t *testing.T, line string) element.DOM {
	t.Helper()
	dom, err := selector.ParseDOM(line)
	require.NoError(t, err)
	return dom
}

func TestDistance_Scenarios(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		original string
		target   string
		want     int
	}{
		{"div", "div", 0},
		{"div", "span", 1},
		{"div.a", "div.a.b", 1},
		{"div#x", "div", 1},
		{"div#x", "div#y", 2},
		{"a b c", "a c", 1},
		{"a", "a b", 1},
		{"div.a.b", "div.b.a", 0},
		{"", "", 0},
		{"", "div#x.a.b", 4},
		{"div#x.a.b p span", "", 3},
		{"html body div#main.a p", "html body div#main.b p", 2},
		{"x y z", "y z x", 2},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q->%q", tc.original, tc.target), func(t *testing.T) {
			a, b := mustDOM(t, tc.original), mustDOM(t, tc.target)

			assert.Equal(t, tc.want, Distance(a, b))
			assert.Equal(t, tc.want, Align(a, b).Cost)
		})
	}
}

func TestDistance_Identity(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		x := randomDOM(rng, rng.Intn(8))
		assert.Equal(t, 0, Distance(x, x), x.String())
	}
}

func TestDistance_EmptySides(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 50; i++ {
		x := randomDOM(rng, rng.Intn(8))

		assert.Equal(t, len(x), Distance(x, nil), "deleting everything costs one per element")

		want := 0
		for _, e := range x {
			want += cost.InsertCost(e)
		}
		assert.Equal(t, want, Distance(nil, x), "inserting everything costs the sum of insert costs")
	}
}

func TestDistance_ClassOrderIndependence(t *testing.T) {
	t.Parallel()

	a := element.DOM{element.New("div", "a", "b", "c"), element.NewWithID("p", "x", "k", "l")}
	b := element.DOM{element.New("div", "c", "d"), element.New("p", "l", "m")}
	permuted := element.DOM{element.New("div", "c", "a", "b"), element.NewWithID("p", "x", "l", "k")}

	assert.Equal(t, Distance(a, b), Distance(permuted, b))
	assert.Equal(t, Distance(b, a), Distance(b, permuted))
	assert.Equal(t, 0, Distance(a, permuted))
}

func TestDistance_FindsAlignmentsBeyondFirstMismatch(t *testing.T) {
	t.Parallel()

	// Resolving the first mismatch by altering "x" into "a" would cascade into
	// further alterations. Deleting "x" lets every remaining element match.
	a := mustDOM(t, "x#i.p.q a#j.r b#k.s c#l.t")
	b := mustDOM(t, "a#j.r b#k.s c#l.t")

	assert.Equal(t, 1, Distance(a, b))
}

func TestDistance_AgreesWithExhaustiveSearch(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		a := randomDOM(rng, rng.Intn(5))
		b := randomDOM(rng, rng.Intn(5))

		want := exhaustive(cost.Default, a, b)
		require.Equal(t, want, Distance(a, b), "%s -> %s", a, b)
		require.Equal(t, want, Align(a, b).Cost, "%s -> %s", a, b)
	}
}

func TestDistanceWith_CustomModel(t *testing.T) {
	t.Parallel()

	// With substitution disabled by a huge price, altering becomes delete+insert.
	m, err := cost.NewWeighted(cost.Weights{Delete: 1, Insert: 1, Substitute: 100})
	require.NoError(t, err)

	a := mustDOM(t, "div")
	b := mustDOM(t, "span.a")

	assert.Equal(t, 2, Distance(a, b))
	assert.Equal(t, 1+cost.InsertCost(b[0]), DistanceWith(m, a, b))
	assert.Equal(t, DistanceWith(m, a, b), AlignWith(m, a, b).Cost)
}

func TestAlign_ScriptProperties(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 200; i++ {
		a := randomDOM(rng, rng.Intn(7))
		b := randomDOM(rng, rng.Intn(7))

		res := Align(a, b)
		require.Equal(t, Distance(a, b), res.Cost)
		require.Equal(t, res.Cost, res.Script.Cost(), "op costs must add up to the total")

		got, err := res.Script.Apply(a)
		require.NoError(t, err)
		require.True(t, b.Equal(got), "script must turn %s into %s, got %s", a, b, got)
	}
}

func TestAlign_ScriptForDeletion(t *testing.T) {
	t.Parallel()

	res := Align(mustDOM(t, "a b c"), mustDOM(t, "a c"))

	want := []Kind{Keep, Delete, Keep}
	if diff := cmp.Diff(want, kinds(res.Script)); diff != "" {
		t.Errorf("unexpected script (-want +got):\n%s", diff)
	}
	assert.Equal(t, "keep a\ndelete b (1)\nkeep c", res.Script.String())
}

func TestAlign_TieBreakIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := mustDOM(t, "p"), mustDOM(t, "p p")

	// Keeping the single "p" against either target "p" costs the same; the
	// substitution is taken at the last cell, so the insertion comes first.
	for i := 0; i < 5; i++ {
		res := Align(a, b)
		if diff := cmp.Diff([]Kind{Insert, Keep}, kinds(res.Script)); diff != "" {
			t.Fatalf("unexpected script (-want +got):\n%s", diff)
		}
	}
}

func TestAlign_Alter(t *testing.T) {
	t.Parallel()

	res := Align(mustDOM(t, "div#x.a"), mustDOM(t, "div#y.a.b"))

	require.Len(t, res.Script, 1)
	op := res.Script[0]
	assert.Equal(t, Alter, op.Kind)
	assert.Equal(t, 0, op.SourceIndex)
	assert.Equal(t, 0, op.TargetIndex)
	assert.Equal(t, 3, op.Cost)
	assert.Equal(t, "alter div#x.a -> div#y.a.b (3)", op.String())
}

func TestAlign_EmptyInputs(t *testing.T) {
	t.Parallel()

	res := Align(nil, nil)
	assert.Equal(t, 0, res.Cost)
	assert.Empty(t, res.Script)

	res = Align(nil, mustDOM(t, "a#b"))
	assert.Equal(t, 2, res.Cost)
	assert.Equal(t, []Kind{Insert}, kinds(res.Script))
	assert.Equal(t, -1, res.Script[0].SourceIndex)
}

func TestScript_ApplyRejectsForeignScript(t *testing.T) {
	t.Parallel()

	res := Align(mustDOM(t, "a b"), mustDOM(t, "a"))
	_, err := res.Script.Apply(mustDOM(t, "a"))
	require.Error(t, err)
}

func kinds(s Script) []Kind {
	out := make([]Kind, len(s))
	for i, op := range s {
		out[i] = op.Kind
	}
	return out
}

// exhaustive tries every alignment by plain recursion. Only usable on tiny inputs.
func exhaustive(m cost.Model, a, b element.DOM) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return m.Insert(b[0]) + exhaustive(m, a, b[1:])
	case len(b) == 0:
		return m.Delete(a[0]) + exhaustive(m, a[1:], b)
	}
	best := m.Substitute(a[0], b[0]) + exhaustive(m, a[1:], b[1:])
	if v := m.Delete(a[0]) + exhaustive(m, a[1:], b); v < best {
		best = v
	}
	if v := m.Insert(b[0]) + exhaustive(m, a, b[1:]); v < best {
		best = v
	}
	return best
}

func randomDOM(rng *rand.Rand, n int) element.DOM {
	tags := []string{"div", "span", "p"}
	ids := []string{"x", "y"}
	classes := []string{"a", "b", "c"}

	dom := make(element.DOM, n)
	for i := range dom {
		var cls []string
		for _, c := range classes {
			if rng.Intn(3) == 0 {
				cls = append(cls, c)
			}
		}
		rng.Shuffle(len(cls), func(x, y int) { cls[x], cls[y] = cls[y], cls[x] })

		tag := tags[rng.Intn(len(tags))]
		if rng.Intn(2) == 0 {
			dom[i] = element.NewWithID(tag, ids[rng.Intn(len(ids))], cls...)
		} else {
			dom[i] = element.New(tag, cls...)
		}
	}
	return dom
}
