package loader_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/curricula/core"
	"github.com/katalvlaran/curricula/course"
	"github.com/katalvlaran/curricula/curriculum"
	"github.com/katalvlaran/curricula/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The same four-course plan in every format. MATH2 lists its requisite before
// MATH1 is declared, and LAB is a strict co-requisite of PHYS1.
const planYAML = `
id: eng-2024
name: Engineering
institution: ACME
degree_type: BS
courses:
  - id: MATH2
    name: Calculus II
    credits: 4
    requisites:
      - id: MATH1
  - id: MATH1
    name: Calculus I
    credits: 4
  - id: PHYS1
    name: Physics I
    credits: 3
    requisites:
      - id: MATH1
        kind: co
      - id: LAB
        kind: strict_co
  - id: LAB
    name: Physics Lab
    credits: 1
    requisites:
      - id: PHYS1
        kind: strict_co
`

const planTOML = `
id = "eng-2024"
name = "Engineering"
institution = "ACME"
degree_type = "BS"

[[courses]]
id = "MATH2"
name = "Calculus II"
credits = 4.0
requisites = [{ id = "MATH1" }]

[[courses]]
id = "MATH1"
name = "Calculus I"
credits = 4.0

[[courses]]
id = "PHYS1"
name = "Physics I"
credits = 3.0
requisites = [{ id = "MATH1", kind = "co" }, { id = "LAB", kind = "strict_co" }]

[[courses]]
id = "LAB"
name = "Physics Lab"
credits = 1.0
requisites = [{ id = "PHYS1", kind = "strict_co" }]
`

const planJSON = `{
  "id": "eng-2024",
  "name": "Engineering",
  "institution": "ACME",
  "degree_type": "BS",
  "courses": [
    {"id": "MATH2", "name": "Calculus II", "credits": 4, "requisites": [{"id": "MATH1"}]},
    {"id": "MATH1", "name": "Calculus I", "credits": 4},
    {"id": "PHYS1", "name": "Physics I", "credits": 3,
     "requisites": [{"id": "MATH1", "kind": "co"}, {"id": "LAB", "kind": "strict_co"}]},
    {"id": "LAB", "name": "Physics Lab", "credits": 1,
     "requisites": [{"id": "PHYS1", "kind": "strict_co"}]}
  ]
}`

const planHCL = `
id          = "eng-2024"
name        = "Engineering"
institution = "ACME"
degree_type = "BS"

course "MATH2" {
  name    = "Calculus II"
  credits = 4
  requisite "MATH1" {}
}

course "MATH1" {
  name    = "Calculus I"
  credits = 4
}

course "PHYS1" {
  name    = "Physics I"
  credits = 3
  requisite "MATH1" {
    kind = "co"
  }
  requisite "LAB" {
    kind = "strict_co"
  }
}

course "LAB" {
  name    = "Physics Lab"
  credits = 1
  requisite "PHYS1" {
    kind = "strict_co"
  }
}
`

var plans = map[loader.Format]string{
	loader.YAML: planYAML,
	loader.TOML: planTOML,
	loader.JSON: planJSON,
	loader.HCL:  planHCL,
}

// checkPlan asserts c is the Engineering plan whatever its source format.
func checkPlan(t *testing.T, c *curriculum.Curriculum) {
	t.Helper()
	assert.Equal(t, "eng-2024", c.ID())
	assert.Equal(t, "Engineering", c.Name())
	assert.Equal(t, "ACME", c.Institution())
	assert.Equal(t, "BS", c.DegreeType())
	assert.Equal(t, 12.0, c.Credits())

	order, err := c.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []string{"MATH1", "MATH2", "PHYS1", "LAB"}, order)

	phys, ok := c.Course("PHYS1")
	require.True(t, ok)
	assert.Equal(t, map[string]course.Requisite{"MATH1": course.Co, "LAB": course.StrictCo}, phys.Requisites())

	lp, err := c.LongestPath()
	require.NoError(t, err)
	assert.Equal(t, 8.0, lp.Length)
}

func TestDecode_AllFormats(t *testing.T) {
	for _, f := range loader.Formats {
		t.Run(string(f), func(t *testing.T) {
			c, err := loader.Decode(strings.NewReader(plans[f]), f)
			require.NoError(t, err)
			checkPlan(t, c)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	ext := map[loader.Format]string{loader.YAML: "yml", loader.TOML: "toml", loader.JSON: "json", loader.HCL: "hcl"}
	for f, src := range plans {
		path := filepath.Join(dir, "plan."+ext[f])
		require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

		c, err := loader.Load(path, curriculum.WithID("override"))
		require.NoError(t, err, f)
		assert.Equal(t, "override", c.ID(), "caller options win")
	}

	_, err := loader.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loader.Load(filepath.Join(dir, "plan.txt"))
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)

	_, err = loader.Load(filepath.Join(dir, "plan"))
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]loader.Format{
		"yaml": loader.YAML, "YML": loader.YAML, ".toml": loader.TOML, "json": loader.JSON, "HCL": loader.HCL,
	} {
		got, err := loader.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := loader.ParseFormat("xml")
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)

	f, err := loader.FormatOf("/tmp/plans/cs.hcl")
	require.NoError(t, err)
	assert.Equal(t, loader.HCL, f)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		f    loader.Format
		src  string
		want error
	}{
		{"unknown yaml field", loader.YAML, "name: X\nterms: 8\n", nil},
		{"unknown toml field", loader.TOML, "name = \"X\"\nterms = 8\n", nil},
		{"unknown json field", loader.JSON, `{"name": "X", "terms": 8}`, nil},
		{"hcl syntax", loader.HCL, "name = \n", nil},
		{"hcl missing name", loader.HCL, "cip = \"1\"\n", nil},
		{"missing name", loader.YAML, "courses: []\n", loader.ErrInvalidDefinition},
		{"unnamed course", loader.YAML, "name: X\ncourses:\n  - id: A\n    credits: 3\n", loader.ErrInvalidDefinition},
		{"bad kind", loader.YAML, "name: X\ncourses:\n  - {id: A, name: A, credits: 3, requisites: [{id: B, kind: later}]}\n  - {id: B, name: B, credits: 3}\n", course.ErrUnknownRequisite},
		{"duplicate id", loader.JSON, `{"name": "X", "courses": [{"id": "A", "name": "A"}, {"id": "A", "name": "B"}]}`, core.ErrDuplicateCourse},
		{"unknown format", loader.Format("ini"), "name = X", loader.ErrUnknownFormat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Decode(strings.NewReader(tc.src), tc.f)
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestDanglingRequisite_Deferred(t *testing.T) {
	src := "name: X\ncourses:\n  - {id: A, name: A, credits: 3, requisites: [{id: GHOST}]}\n"
	c, err := loader.Decode(strings.NewReader(src), loader.YAML)
	require.NoError(t, err, "references resolve at first query")

	_, err = c.TopologicalSort()
	assert.ErrorIs(t, err, core.ErrDanglingRequisite)
}

func TestCollection(t *testing.T) {
	src := `
name: Electives
courses:
  - id: ELEC
    name: Technical Elective
    credits: 3
    members:
      - {id: CS310, name: Databases, credits: 3}
      - {id: CS320, name: Networks, credits: 3}
    requisites:
      - id: CS101
  - id: CS101
    name: Programming I
    credits: 4
`
	c, err := loader.Decode(strings.NewReader(src), loader.YAML)
	require.NoError(t, err)
	it, ok := c.Course("ELEC")
	require.True(t, ok)
	coll, ok := it.(*course.Collection)
	require.True(t, ok)
	require.Len(t, coll.Courses(), 2)
	assert.Equal(t, "CS320", coll.Courses()[1].ID())

	from, err := c.ReachableFrom("CS101")
	require.NoError(t, err)
	assert.Equal(t, []string{"ELEC"}, from)
}

func TestEncode_RoundTrip(t *testing.T) {
	orig, err := loader.Decode(strings.NewReader(planYAML), loader.YAML)
	require.NoError(t, err)
	want := loader.FromCurriculum(orig)
	require.Len(t, want.Courses, 4)
	assert.Equal(t, []loader.RequisiteDef{{ID: "LAB", Kind: "strict_co"}, {ID: "MATH1", Kind: "co"}}, want.Courses[2].Requisites)

	for _, f := range loader.Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, loader.Encode(&buf, f, want))

			got, err := loader.DecodeDefinition(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			c, err := got.Build()
			require.NoError(t, err)
			checkPlan(t, c)
		})
	}

	assert.ErrorIs(t, loader.Encode(&bytes.Buffer{}, "xml", want), loader.ErrUnknownFormat)
}

func TestEncode_HCLLayout(t *testing.T) {
	d := &loader.Definition{
		Name: "Tiny",
		Courses: []loader.CourseDef{
			{ID: "A", Name: "Intro", Credits: 3},
			{ID: "B", Name: "Next", Credits: 3, Requisites: []loader.RequisiteDef{{ID: "A", Kind: "pre"}}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, loader.Encode(&buf, loader.HCL, d))
	out := buf.String()
	assert.Contains(t, out, `course "A" {`)
	assert.Contains(t, out, `requisite "A" {`)
	assert.NotContains(t, out, "institution", "empty attributes omitted")
}
