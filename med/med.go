package med

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/icurves/core"
	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/diagram"
	"honnef.co/go/curve"
)

var (
	// ErrNoCycle is returned when no valid cycle covers the zones to split.
	ErrNoCycle = errors.New("med: no valid cycle")

	// ErrDuplicateNode is returned when a node id is added twice.
	ErrDuplicateNode = errors.New("med: duplicate node")

	// ErrUnknownNode is returned for edges or lookups naming a missing node.
	ErrUnknownNode = errors.New("med: unknown node")

	// ErrBadEdge is returned for a polyline that does not join its nodes.
	ErrBadEdge = errors.New("med: edge polyline does not join its nodes")
)

// Node is a dual-graph vertex: a region and its representative point.
// Ring nodes are bound to the outside region.
type Node struct {
	ID     string
	Region *diagram.Region
	Point  curve.Point
	Ring   bool
}

// Zone returns the abstract zone of the node's region.
func (n *Node) Zone() description.Region { return n.Region.Zone }

// String implements fmt.Stringer.
func (n *Node) String() string { return fmt.Sprintf("%s%s", n.ID, n.Region.Zone) }

// EdgeKind tells how an edge was drawn.
type EdgeKind int

const (
	// EdgeStraight is a single segment between two node points.
	EdgeStraight EdgeKind = iota
	// EdgeRouted is a polyline found by the grid router.
	EdgeRouted
	// EdgeRing joins consecutive ring nodes.
	EdgeRing
)

// String implements fmt.Stringer.
func (k EdgeKind) String() string {
	switch k {
	case EdgeRouted:
		return "routed"
	case EdgeRing:
		return "ring"
	default:
		return "straight"
	}
}

// Edge joins two nodes with a polyline running from From.Point to To.Point.
type Edge struct {
	ID       string
	From, To *Node
	Points   []curve.Point
	Kind     EdgeKind
}

// pointsFrom returns the polyline oriented to start at n.
func (e *Edge) pointsFrom(n *Node) []curve.Point {
	if e.From == n {
		return e.Points
	}
	out := make([]curve.Point, len(e.Points))
	for i, p := range e.Points {
		out[len(out)-1-i] = p
	}

	return out
}

type pairKey struct{ a, b string }

func keyOf(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{a, b}
}

// MED is the dual graph of one diagram step. Node and edge identity is kept
// in a core.Graph; geometry lives on Node and Edge.
type MED struct {
	graph  *core.Graph
	nodes  map[string]*Node
	edges  map[pairKey]*Edge
	opts   Options
	center curve.Point
	radius float64
}

// New returns an empty MED. Build fills one from a diagram; New with AddNode
// and AddEdge assembles arbitrary graphs.
func New(opts Options) *MED {
	return &MED{
		graph: core.NewGraph(),
		nodes: make(map[string]*Node),
		edges: make(map[pairKey]*Edge),
		opts:  opts.normalized(),
	}
}

// AddNode adds n. Its id must be unique and its region non-nil.
func (m *MED) AddNode(n *Node) error {
	if n == nil || n.Region == nil {
		return fmt.Errorf("AddNode: %w", ErrUnknownNode)
	}
	if _, ok := m.nodes[n.ID]; ok {
		return fmt.Errorf("AddNode(%q): %w", n.ID, ErrDuplicateNode)
	}
	if err := m.graph.AddVertex(n.ID); err != nil {
		return fmt.Errorf("AddNode(%q): %w", n.ID, err)
	}
	m.nodes[n.ID] = n

	return nil
}

// AddEdge joins from and to with points, which must start at from's point
// and end at to's point. A nil points slice means a straight segment.
func (m *MED) AddEdge(from, to string, points []curve.Point, kind EdgeKind) (*Edge, error) {
	a, ok := m.nodes[from]
	if !ok {
		return nil, fmt.Errorf("AddEdge(%q,%q): %q: %w", from, to, from, ErrUnknownNode)
	}
	b, ok := m.nodes[to]
	if !ok {
		return nil, fmt.Errorf("AddEdge(%q,%q): %q: %w", from, to, to, ErrUnknownNode)
	}
	if points == nil {
		points = []curve.Point{a.Point, b.Point}
	}
	if len(points) < 2 || points[0] != a.Point || points[len(points)-1] != b.Point {
		return nil, fmt.Errorf("AddEdge(%q,%q): %w", from, to, ErrBadEdge)
	}
	id, err := m.graph.AddEdge(from, to)
	if err != nil {
		return nil, fmt.Errorf("AddEdge(%q,%q): %w", from, to, err)
	}
	e := &Edge{ID: id, From: a, To: b, Points: points, Kind: kind}
	m.edges[keyOf(from, to)] = e

	return e, nil
}

// Graph returns the underlying graph of node ids.
func (m *MED) Graph() *core.Graph { return m.graph }

// Node returns the node with the given id.
func (m *MED) Node(id string) (*Node, bool) {
	n, ok := m.nodes[id]

	return n, ok
}

// Nodes returns all nodes sorted by id.
func (m *MED) Nodes() []*Node {
	out := make([]*Node, 0, len(m.nodes))
	for _, n := range m.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns all edges in insertion order.
func (m *MED) Edges() []*Edge {
	out := make([]*Edge, 0, len(m.edges))
	for _, e := range m.graph.Edges() {
		out = append(out, m.edges[keyOf(e.From, e.To)])
	}

	return out
}

// EdgeBetween returns the edge joining a and b in either direction.
func (m *MED) EdgeBetween(a, b string) (*Edge, bool) {
	e, ok := m.edges[keyOf(a, b)]

	return e, ok
}

// Ring returns the center and radius of the outer ring. Both are zero for a
// MED assembled by hand.
func (m *MED) Ring() (curve.Point, float64) { return m.center, m.radius }

func regionNodeID(r *diagram.Region) string { return fmt.Sprintf("r%04d", r.ID) }

func ringNodeID(k int) string { return fmt.Sprintf("o%03d", k) }
