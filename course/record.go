package course

import (
	"maps"
	"sync"
)

// record holds the state shared by Course and Collection.
type record struct {
	mu sync.Mutex // guards requisites, metrics, vertexID, rev

	id            string
	name          string
	credits       float64
	institution   string
	college       string
	department    string
	canonicalName string

	requisites map[string]Requisite // requisite course id → kind
	metrics    Metrics
	vertexID   map[string]int // curriculum id → vertex id (back-reference only)
	rev        uint64

	// Metadata stores arbitrary user data; it is not guarded by mu.
	Metadata map[string]any
}

func newRecord(name string, credits float64, a attrs) record {
	return record{
		id:            a.id,
		name:          name,
		credits:       credits,
		institution:   a.institution,
		college:       a.college,
		department:    a.department,
		canonicalName: a.canonicalName,
		requisites:    make(map[string]Requisite),
		metrics:       Uncomputed(),
		vertexID:      make(map[string]int),
		Metadata:      make(map[string]any),
	}
}

func (r *record) base() *record { return r }

// ID returns the unique course identifier.
func (r *record) ID() string { return r.id }

// Name returns the course name.
func (r *record) Name() string { return r.name }

// Credits returns the credit hours.
func (r *record) Credits() float64 { return r.credits }

// Institution returns the offering institution.
func (r *record) Institution() string { return r.institution }

// College returns the offering college or school.
func (r *record) College() string { return r.college }

// Department returns the offering department.
func (r *record) Department() string { return r.department }

// CanonicalName returns the discipline-standard name, e.g. "Calculus I".
func (r *record) CanonicalName() string { return r.canonicalName }

// Requisites returns a copy of the requisite map.
func (r *record) Requisites() map[string]Requisite {
	r.mu.Lock()
	defer r.mu.Unlock()

	return maps.Clone(r.requisites)
}

// Metrics returns the current metrics record.
func (r *record) Metrics() Metrics {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.metrics
}

// SetMetrics overwrites the metrics record.
func (r *record) SetMetrics(m Metrics) {
	r.mu.Lock()
	r.metrics = m
	r.mu.Unlock()
}

// VertexID returns the vertex id recorded for curriculumID.
func (r *record) VertexID(curriculumID string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vertexID[curriculumID]

	return v, ok
}

// SetVertexID records the vertex id for curriculumID.
func (r *record) SetVertexID(curriculumID string, v int) {
	r.mu.Lock()
	r.vertexID[curriculumID] = v
	r.mu.Unlock()
}

// ClearVertexID forgets the vertex id for curriculumID.
func (r *record) ClearVertexID(curriculumID string) {
	r.mu.Lock()
	delete(r.vertexID, curriculumID)
	r.mu.Unlock()
}

// Revision returns the requisite revision counter.
func (r *record) Revision() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rev
}

// setRequisite stores kind for requisite id and bumps the revision.
func (r *record) setRequisite(id string, kind Requisite) {
	r.mu.Lock()
	r.requisites[id] = kind
	r.rev++
	r.mu.Unlock()
}

// deleteRequisite removes requisite id; it reports whether it existed.
func (r *record) deleteRequisite(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.requisites[id]; !ok {
		return false
	}
	delete(r.requisites, id)
	r.rev++

	return true
}
