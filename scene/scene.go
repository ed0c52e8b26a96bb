// Package scene defines the structured ingest and report contracts a
// textual .geo/.qry parser (out of scope for this module) would produce
// and consume: shape/query records, a monotone id source, and the report
// records a query.Executor emits. Grounded on the record shapes implied by
// original_source/.../cmd_a.c, cmd_d.c, cmd_p.c, cmd_cln.c's own
// gerar_relatorio_txt helpers.
package scene

import "fmt"

// IDSource is a monotone id cell: every call to Next returns a value one
// greater than the last. The zero value's first Next call returns 0.
type IDSource struct {
	next int
}

// NewIDSource creates an IDSource whose first Next() call returns start.
func NewIDSource(start int) *IDSource {
	return &IDSource{next: start}
}

// Next mints and returns the next id.
func (s *IDSource) Next() int {
	id := s.next
	s.next++
	return id
}

// QueryKind identifies which of the four query operations a QueryRecord
// describes.
type QueryKind uint8

const (
	QueryAnteparo QueryKind = iota
	QueryDestroy
	QueryPaint
	QueryClone
)

func (k QueryKind) String() string {
	switch k {
	case QueryAnteparo:
		return "anteparo"
	case QueryDestroy:
		return "destroy"
	case QueryPaint:
		return "paint"
	case QueryClone:
		return "clone"
	default:
		return fmt.Sprintf("QueryKind(%d)", uint8(k))
	}
}

// QueryRecord is one parsed query awaiting execution. Only the fields
// relevant to Kind are meaningful; this mirrors the original's per-command
// argument structs (cmd_a/cmd_d/cmd_p/cmd_cln's executar_cmd_* signatures)
// collapsed into one ingest struct.
type QueryRecord struct {
	Kind QueryKind

	// Anteparo: shape id range and chord orientation for circles.
	IDStart, IDEnd int
	ChordVertical  bool

	// Destroy, Paint, Clone: viewpoint.
	OriginX, OriginY float64

	// Paint: fill/border colour applied to visible shapes.
	Color string

	// Clone: translation applied to visible shapes' clones.
	DX, DY float64

	// Destroy, Clone: output suffix ("-" accumulates into a composite
	// render instead of producing its own document).
	Suffix string
}

// Conversion records one shape→blocker conversion performed by an anteparo
// query, for reporting.
type Conversion struct {
	ShapeID    int
	BlockerIDs []int
}

// Report is one record of a successfully executed query, per spec.md §6's
// "shape ids, destroyed blocker ids, conversion maps, clone ids, or paint
// colour, as appropriate" — fields are populated according to Kind.
type Report struct {
	Kind QueryKind

	// Anteparo.
	Conversions []Conversion

	// Destroy.
	DestroyedShapeIDs   []int
	DestroyedBlockerIDs []int

	// Paint.
	PaintedShapeIDs []int
	Color           string

	// Clone.
	ClonedShapeIDs map[int]int // original id -> clone id

	OriginX, OriginY float64
	Suffix           string
}

// ReportSink receives one Report per successfully executed query. A stream
// runner implements this to collect or persist reports; query.Executor
// itself has no file I/O and does not call a ReportSink.
type ReportSink interface {
	Record(Report)
}

// ReportLog is a ReportSink that simply accumulates reports in memory.
type ReportLog struct {
	Reports []Report
}

// Record appends r to the log.
func (l *ReportLog) Record(r Report) {
	l.Reports = append(l.Reports, r)
}
