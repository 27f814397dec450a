package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/curricula/course"
	"github.com/katalvlaran/curricula/curriculum"
	"github.com/katalvlaran/curricula/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type link struct {
	from, to string
	kind     course.Requisite
}

// plan builds a curriculum of 3-credit courses with the given requisites.
func plan(t *testing.T, ids []string, links ...link) *curriculum.Curriculum {
	t.Helper()
	byID := make(map[string]*course.Course, len(ids))
	items := make([]course.Item, 0, len(ids))
	for _, id := range ids {
		c := course.NewCourse("Course "+id, 3, course.WithID(id))
		byID[id] = c
		items = append(items, c)
	}
	for _, l := range links {
		require.NoError(t, course.AddRequisite(byID[l.from], byID[l.to], l.kind))
	}
	c, err := curriculum.New("Example", items, curriculum.WithID("ex"), curriculum.WithInstitution("ACME"))
	require.NoError(t, err)

	return c
}

func diamond(t *testing.T) *curriculum.Curriculum {
	return plan(t, []string{"A", "B", "C", "D"},
		link{"A", "B", course.Pre},
		link{"B", "C", course.Pre},
		link{"A", "C", course.Pre},
		link{"C", "D", course.Pre},
	)
}

func TestAnalyze(t *testing.T) {
	a, err := report.Analyze(diamond(t))
	require.NoError(t, err)

	assert.Equal(t, "ex", a.ID)
	assert.Equal(t, "ACME", a.Institution)
	assert.Equal(t, 12.0, a.Credits)
	assert.Equal(t, []string{"A", "B", "C", "D"}, a.Order)
	assert.Equal(t, curriculum.Path{Courses: []string{"A", "B", "C", "D"}, Length: 12}, a.LongestPath)
	require.Len(t, a.Courses, 4)
	assert.Equal(t, "B", a.Courses[1].ID)
	assert.Equal(t, 4, a.Courses[1].Metrics.Centrality)
	assert.Equal(t, 54.0, a.Statistics.CurricularComplexity)
	assert.Equal(t, 1, a.Homology.Components)
}

func TestAnalyze_Cycle(t *testing.T) {
	c := diamond(t)
	require.NoError(t, c.AddRequisite("D", "A", course.Pre))
	_, err := report.Analyze(c)
	assert.Error(t, err)
}

func TestWrite_JSON(t *testing.T) {
	a, err := report.Analyze(diamond(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.JSON, a))

	var got struct {
		Name        string          `json:"name"`
		LongestPath curriculum.Path `json:"longest_path"`
		Statistics  struct {
			CurricularComplexity float64 `json:"curricular_complexity"`
		} `json:"statistics"`
		Courses []struct {
			ID      string         `json:"id"`
			Metrics course.Metrics `json:"metrics"`
		} `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Example", got.Name)
	assert.Equal(t, 12.0, got.LongestPath.Length)
	assert.Equal(t, 54.0, got.Statistics.CurricularComplexity)
	require.Len(t, got.Courses, 4)
	assert.Equal(t, 3, got.Courses[0].Metrics.BlockingFactor)
}

func TestWrite_YAML(t *testing.T) {
	a, err := report.Analyze(diamond(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.YAML, a))

	var got report.Analysis
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *a, got)
}

func TestWrite_Text(t *testing.T) {
	a, err := report.Analyze(diamond(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.Text, a))
	out := buf.String()

	assert.NotContains(t, out, "\x1b[", "plain text for a non-terminal writer")
	for _, want := range []string{
		"Example",
		"ID",
		"Course B",
		"Complexity: 54",
		"Longest path: A → B → C → D (12)",
		"Order: A, B, C, D",
		"components=1 sources=1 sinks=1",
	} {
		assert.Contains(t, out, want)
	}

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[2], "ID"), "header row follows the title")
}

func TestWrite_Unknown(t *testing.T) {
	err := report.Write(&bytes.Buffer{}, report.Mermaid, &report.Analysis{})
	assert.ErrorIs(t, err, report.ErrUnknownFormat)

	_, err = report.ParseFormat("pdf")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
	f, err := report.ParseFormat("TEXT")
	require.NoError(t, err)
	assert.Equal(t, report.Text, f)
}

func TestWriteMermaid(t *testing.T) {
	c := plan(t, []string{"A", "B", "C", "D"},
		link{"A", "B", course.Pre},
		link{"A", "C", course.Co},
		link{"C", "D", course.StrictCo},
		link{"D", "C", course.StrictCo},
	)

	var buf bytes.Buffer
	require.NoError(t, report.WriteMermaid(&buf, c))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	for _, want := range []string{
		`N0["A: Course A"]`,
		`subgraph G2["C+D"]`,
		"N0 --> N1",
		"N0 -.-> N2",
		"N2 ==> N3",
		"N3 ==> N2",
		"classDef critical",
		"class N0,N2,N3 critical",
	} {
		assert.Contains(t, out, want)
	}
}

func TestWriteMermaid_CycleSkipsHighlight(t *testing.T) {
	c := diamond(t)
	require.NoError(t, c.AddRequisite("D", "A", course.Pre))

	var buf bytes.Buffer
	require.NoError(t, report.WriteMermaid(&buf, c))
	assert.Contains(t, buf.String(), "N3 --> N0")
	assert.NotContains(t, buf.String(), "critical")
}
