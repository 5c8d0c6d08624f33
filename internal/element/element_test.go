package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElement_Accessors(t *testing.T) {
	e := NewWithID("div", "main", "a", "b")

	assert.Equal(t, "div", e.Tag())
	id, ok := e.ID()
	assert.True(t, ok)
	assert.Equal(t, "main", id)
	assert.Equal(t, 2, e.ClassCount())
	assert.Equal(t, []string{"a", "b"}, e.Classes().Names())
}

func TestElement_EmptyTagPanics(t *testing.T) {
	assert.PanicsWithValue(t, "element: tag must not be empty", func() { New("") })
	assert.PanicsWithValue(t, "element: tag must not be empty", func() { NewWithID("", "x", "a") })
	assert.NotPanics(t, func() { NewWithID("div", "") })
}

func TestElement_EmptyIDIsDistinctFromNoID(t *testing.T) {
	withEmpty := NewWithID("div", "")
	without := New("div")

	assert.True(t, withEmpty.HasID())
	assert.False(t, without.HasID())
	assert.False(t, withEmpty.Equal(without))
	assert.Equal(t, "div#", withEmpty.String())
	assert.Equal(t, "div", without.String())
}

func TestElement_Equal(t *testing.T) {
	testCases := []struct {
		name string
		a, b Element
		want bool
	}{
		{"plain tags", New("div"), New("div"), true},
		{"different tags", New("div"), New("span"), false},
		{"class order ignored", New("div", "a", "b"), New("div", "b", "a"), true},
		{"different classes", New("div", "a"), New("div", "b"), false},
		{"same id", NewWithID("div", "x"), NewWithID("div", "x"), true},
		{"different id", NewWithID("div", "x"), NewWithID("div", "y"), false},
		{"one-sided id", NewWithID("div", "x"), New("div"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a))
		})
	}
}

func TestElement_ClassesIsACopy(t *testing.T) {
	e := New("div", "a")
	classes := e.Classes()
	classes.Add("b")

	assert.Equal(t, 1, e.ClassCount())
	assert.Equal(t, "div.a", e.String())
}

func TestElement_CloneIsIndependent(t *testing.T) {
	e := NewWithID("p", "x", "a", "b")
	c := e.Clone()

	assert.True(t, e.Equal(c))
	assert.Equal(t, e.String(), c.String())
}

func TestElement_ClassDifference(t *testing.T) {
	a := New("div", "a", "b", "c")
	b := New("span", "c", "d")

	assert.Equal(t, 3, a.ClassDifference(b))
	assert.Equal(t, 0, a.ClassDifference(New("x", "c", "b", "a")))
}

func TestDOM_StringAndEqual(t *testing.T) {
	d := DOM{New("html"), NewWithID("body", "main"), New("div", "card", "wide")}

	assert.Equal(t, "html body#main div.card.wide", d.String())
	assert.True(t, d.Equal(DOM{New("html"), NewWithID("body", "main"), New("div", "wide", "card")}))
	assert.False(t, d.Equal(d[:2]))
	assert.Equal(t, "", DOM{}.String())
}
