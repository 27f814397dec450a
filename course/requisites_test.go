package course_test

import (
	"testing"

	"github.com/katalvlaran/curricula/course"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRequisite(t *testing.T) {
	a := course.NewCourse("A", 3, course.WithID("A"))
	b := course.NewCourse("B", 3, course.WithID("B"))

	rev := b.Revision()
	require.NoError(t, course.AddRequisite(a, b, course.Pre))
	assert.Equal(t, map[string]course.Requisite{"A": course.Pre}, b.Requisites())
	assert.Empty(t, a.Requisites(), "requisites live on the target")
	assert.Greater(t, b.Revision(), rev)

	// replacing the kind
	require.NoError(t, course.AddRequisite(a, b, course.StrictCo))
	assert.Equal(t, course.StrictCo, b.Requisites()["A"])

	// the map is a copy
	b.Requisites()["X"] = course.Co
	assert.NotContains(t, b.Requisites(), "X")

	assert.ErrorIs(t, course.AddRequisite(nil, b, course.Pre), course.ErrNilCourse)
	assert.ErrorIs(t, course.AddRequisite(a, nil, course.Pre), course.ErrNilCourse)
}

func TestAddRequisites(t *testing.T) {
	a := course.NewCourse("A", 3, course.WithID("A"))
	b := course.NewCourse("B", 3, course.WithID("B"))
	c := course.NewCourse("C", 3, course.WithID("C"))

	err := course.AddRequisites([]course.Item{a, b}, c, []course.Requisite{course.Pre, course.Co})
	require.NoError(t, err)
	assert.Equal(t, map[string]course.Requisite{"A": course.Pre, "B": course.Co}, c.Requisites())

	err = course.AddRequisites([]course.Item{a}, c, nil)
	assert.ErrorIs(t, err, course.ErrLengthMismatch)
}

func TestDeleteRequisite(t *testing.T) {
	a := course.NewCourse("A", 3, course.WithID("A"))
	b := course.NewCourse("B", 3, course.WithID("B"))
	require.NoError(t, course.AddRequisite(a, b, course.Pre))

	rev := b.Revision()
	require.NoError(t, course.DeleteRequisite(a, b))
	assert.Empty(t, b.Requisites())
	assert.Greater(t, b.Revision(), rev)

	assert.ErrorIs(t, course.DeleteRequisite(a, b), course.ErrRequisiteNotFound)

	// by id, before the requisite course exists
	require.NoError(t, course.SetRequisiteByID(b, "LATER", course.Co))
	assert.Equal(t, course.Co, b.Requisites()["LATER"])
	require.NoError(t, course.DeleteRequisiteByID(b, "LATER"))
	assert.ErrorIs(t, course.DeleteRequisiteByID(b, "LATER"), course.ErrRequisiteNotFound)
}

func TestRequisite_Text(t *testing.T) {
	cases := []struct {
		in   string
		want course.Requisite
	}{
		{"pre", course.Pre},
		{"Prerequisite", course.Pre},
		{"co", course.Co},
		{" coreq ", course.Co},
		{"strict_co", course.StrictCo},
		{"strict-co", course.StrictCo},
	}
	for _, tc := range cases {
		got, err := course.ParseRequisite(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := course.ParseRequisite("sometimes")
	assert.ErrorIs(t, err, course.ErrUnknownRequisite)

	for _, r := range []course.Requisite{course.Pre, course.Co, course.StrictCo} {
		text, err := r.MarshalText()
		require.NoError(t, err)
		var back course.Requisite
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, r, back)
	}
	assert.Equal(t, "requisite(7)", course.Requisite(7).String())
}
