package geometry

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

// geographicProjection marks node coordinates given as lon/lat degrees.
const geographicProjection = "LONG/LAT"

// Mesh is a flat (2-D) unstructured flexible mesh: nodes, an element table
// referencing node indices, and a projection string.
type Mesh struct {
	nodeX, nodeY, nodeZ []float64
	elementTable        [][]int
	projection          string
}

// NewMesh builds a flat mesh. nodeZ may be nil for purely horizontal
// meshes. Element tables must reference valid node indices.
func NewMesh(nodeX, nodeY, nodeZ []float64, elementTable [][]int, projection string) (*Mesh, error) {
	if len(nodeX) == 0 || len(nodeX) != len(nodeY) {
		return nil, fmt.Errorf("%w: %d x vs %d y node coordinates", ErrShapeMismatch, len(nodeX), len(nodeY))
	}
	if nodeZ != nil && len(nodeZ) != len(nodeX) {
		return nil, fmt.Errorf("%w: %d z vs %d nodes", ErrShapeMismatch, len(nodeZ), len(nodeX))
	}
	for e, nodes := range elementTable {
		if len(nodes) == 0 {
			return nil, fmt.Errorf("%w: element %d has no nodes", ErrIndex, e)
		}
		for _, n := range nodes {
			if n < 0 || n >= len(nodeX) {
				return nil, fmt.Errorf("%w: element %d references node %d of %d", ErrIndex, e, n, len(nodeX))
			}
		}
	}
	m := &Mesh{
		nodeX:        slices.Clone(nodeX),
		nodeY:        slices.Clone(nodeY),
		elementTable: cloneTable(elementTable),
		projection:   projection,
	}
	if nodeZ != nil {
		m.nodeZ = slices.Clone(nodeZ)
	}
	return m, nil
}

// Kind returns KindMesh.
func (m *Mesh) Kind() Kind       { return KindMesh }
func (m *Mesh) IsLayered() bool  { return false }
func (m *Mesh) IsSpectral() bool { return false }
func (m *Mesh) sealed()          {}

// NNodes returns the node count.
func (m *Mesh) NNodes() int { return len(m.nodeX) }

// NElements returns the element count.
func (m *Mesh) NElements() int { return len(m.elementTable) }

// Projection returns the projection string.
func (m *Mesh) Projection() string { return m.projection }

// IsGeo reports whether coordinates are geographic (lon/lat).
func (m *Mesh) IsGeo() bool { return m.projection == geographicProjection }

// NodePoint returns the horizontal position of node i.
func (m *Mesh) NodePoint(i int) orb.Point { return orb.Point{m.nodeX[i], m.nodeY[i]} }

// ElementTable returns a copy of the node table.
func (m *Mesh) ElementTable() [][]int { return cloneTable(m.elementTable) }

// ElementCentroid returns the centroid of element e. Elements with three
// or more nodes use the polygon centroid; degenerate ones fall back to the
// node mean.
func (m *Mesh) ElementCentroid(e int) orb.Point {
	nodes := m.elementTable[e]
	if len(nodes) >= 3 {
		ring := make(orb.Ring, 0, len(nodes)+1)
		for _, n := range nodes {
			ring = append(ring, m.NodePoint(n))
		}
		ring = append(ring, m.NodePoint(nodes[0]))
		if c, area := planar.CentroidArea(orb.Polygon{ring}); area != 0 {
			return c
		}
	}
	var sx, sy float64
	for _, n := range nodes {
		sx += m.nodeX[n]
		sy += m.nodeY[n]
	}
	f := float64(len(nodes))
	return orb.Point{sx / f, sy / f}
}

// ElementZ returns the mean node elevation of element e (0 without nodeZ).
func (m *Mesh) ElementZ(e int) float64 {
	if m.nodeZ == nil {
		return 0
	}
	s := 0.0
	for _, n := range m.elementTable[e] {
		s += m.nodeZ[n]
	}
	return s / float64(len(m.elementTable[e]))
}

// String describes the mesh.
func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh (%d elements, %d nodes)", m.NElements(), m.NNodes())
}

// distance picks geodesic or planar distance depending on the projection.
func (m *Mesh) distance(a, b orb.Point) float64 {
	if m.IsGeo() {
		return geo.Distance(a, b)
	}
	return planar.Distance(a, b)
}

// NodesForElements returns the sorted unique node indices referenced by
// the given elements. Indices are positions in this mesh's node set.
func (m *Mesh) NodesForElements(elements []int) ([]int, error) {
	seen := map[int]struct{}{}
	for _, e := range elements {
		if e < 0 {
			e += len(m.elementTable)
		}
		if e < 0 || e >= len(m.elementTable) {
			return nil, fmt.Errorf("%w: element %d of %d", ErrIndex, e, len(m.elementTable))
		}
		for _, n := range m.elementTable[e] {
			seen[n] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out, nil
}

// Isel subsets the mesh by element. A single element collapses to its
// centroid Point2D (or Point3D when node elevations are present).
func (m *Mesh) Isel(indices []int, axis int) (Geometry, error) {
	if axis != 0 {
		return nil, fmt.Errorf("%w: axis %d of Mesh", ErrAxis, axis)
	}
	norm, err := m.normElements(indices)
	if err != nil {
		return nil, err
	}
	if len(norm) == 1 {
		c := m.ElementCentroid(norm[0])
		if m.nodeZ != nil {
			return Point3D{X: c[0], Y: c[1], Z: m.ElementZ(norm[0])}, nil
		}
		return Point2D{X: c[0], Y: c[1]}, nil
	}
	sub, _, err := m.subset(norm)
	return sub, err
}

// subset extracts the given elements into a new mesh, renumbering nodes.
// The second return value lists the surviving original node indices in
// the new node order.
func (m *Mesh) subset(elements []int) (*Mesh, []int, error) {
	nodes, err := m.NodesForElements(elements)
	if err != nil {
		return nil, nil, err
	}
	remap := make(map[int]int, len(nodes))
	for newID, oldID := range nodes {
		remap[oldID] = newID
	}
	sub := &Mesh{
		nodeX:        pickUnchecked(m.nodeX, nodes),
		nodeY:        pickUnchecked(m.nodeY, nodes),
		elementTable: make([][]int, len(elements)),
		projection:   m.projection,
	}
	if m.nodeZ != nil {
		sub.nodeZ = pickUnchecked(m.nodeZ, nodes)
	}
	for i, e := range elements {
		old := m.elementTable[e]
		row := make([]int, len(old))
		for j, n := range old {
			row[j] = remap[n]
		}
		sub.elementTable[i] = row
	}
	return sub, nodes, nil
}

// FindIndex resolves coordinates to the nearest element, or an area to
// every element whose centroid falls inside the bound.
func (m *Mesh) FindIndex(q Query) (IndexResult, error) {
	if q.Area != nil {
		var out []int
		for e := range m.elementTable {
			if q.Area.Contains(m.ElementCentroid(e)) {
				out = append(out, e)
			}
		}
		return Flat(out), nil
	}
	if x, y, ok := q.normXY(); ok {
		return Flat([]int{m.nearestElement(orb.Point{x, y})}), nil
	}
	return IndexResult{}, fmt.Errorf("%w: Mesh supports coords and area", ErrQuery)
}

// Interpolant computes inverse-distance weights over the nNearest element
// centroids; a target coinciding with a centroid gets that element alone.
func (m *Mesh) Interpolant(x, y float64, nNearest int) ([]int, []float64, error) {
	if nNearest < 1 {
		nNearest = 1
	}
	if nNearest > m.NElements() {
		nNearest = m.NElements()
	}
	target := orb.Point{x, y}
	type cand struct {
		e int
		d float64
	}
	cands := make([]cand, m.NElements())
	for e := range m.elementTable {
		cands[e] = cand{e, m.distance(target, m.ElementCentroid(e))}
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].d < cands[j].d })
	cands = cands[:nNearest]

	if cands[0].d == 0 {
		return []int{cands[0].e}, []float64{1}, nil
	}
	indices := make([]int, len(cands))
	weights := make([]float64, len(cands))
	total := 0.0
	for i, c := range cands {
		indices[i] = c.e
		weights[i] = 1 / c.d
		total += weights[i]
	}
	for i := range weights {
		weights[i] /= total
	}
	return indices, weights, nil
}

func (m *Mesh) nearestElement(p orb.Point) int {
	best, bestDist := 0, math.Inf(1)
	for e := range m.elementTable {
		if d := m.distance(p, m.ElementCentroid(e)); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func (m *Mesh) normElements(indices []int) ([]int, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: empty element list", ErrIndex)
	}
	out := make([]int, len(indices))
	for i, e := range indices {
		if e < 0 {
			e += len(m.elementTable)
		}
		if e < 0 || e >= len(m.elementTable) {
			return nil, fmt.Errorf("%w: element %d of %d", ErrIndex, indices[i], len(m.elementTable))
		}
		out[i] = e
	}
	return out, nil
}

// MeshLayered is a vertically layered flexible mesh. Every element
// belongs to a water column and a layer within it; per-node elevations
// of associated data arrays follow the node set of this mesh.
type MeshLayered struct {
	Mesh
	layers  []int // layer number per element, 0 = bottom
	columns []int // water-column id per element
}

// NewMeshLayered builds a layered mesh. layers and columns assign every
// element a vertical layer (0 = bottom) and a water-column id.
func NewMeshLayered(nodeX, nodeY, nodeZ []float64, elementTable [][]int,
	projection string, layers, columns []int) (*MeshLayered, error) {
	base, err := NewMesh(nodeX, nodeY, nodeZ, elementTable, projection)
	if err != nil {
		return nil, err
	}
	if len(layers) != len(elementTable) || len(columns) != len(elementTable) {
		return nil, fmt.Errorf("%w: %d layers / %d columns for %d elements",
			ErrShapeMismatch, len(layers), len(columns), len(elementTable))
	}
	return &MeshLayered{
		Mesh:    *base,
		layers:  slices.Clone(layers),
		columns: slices.Clone(columns),
	}, nil
}

// Kind returns KindMeshLayered.
func (m *MeshLayered) Kind() Kind      { return KindMeshLayered }
func (m *MeshLayered) IsLayered() bool { return true }

// NLayers returns the number of vertical layers.
func (m *MeshLayered) NLayers() int {
	n := 0
	for _, l := range m.layers {
		if l+1 > n {
			n = l + 1
		}
	}
	return n
}

// ElementLayers returns a copy of the per-element layer numbers.
func (m *MeshLayered) ElementLayers() []int { return slices.Clone(m.layers) }

// String describes the mesh.
func (m *MeshLayered) String() string {
	return fmt.Sprintf("MeshLayered (%d elements, %d nodes, %d layers)",
		m.NElements(), m.NNodes(), m.NLayers())
}

// Isel subsets by element; a single element collapses to its Point3D
// centroid, a multi-element subset keeps the layered structure.
func (m *MeshLayered) Isel(indices []int, axis int) (Geometry, error) {
	if axis != 0 {
		return nil, fmt.Errorf("%w: axis %d of MeshLayered", ErrAxis, axis)
	}
	norm, err := m.normElements(indices)
	if err != nil {
		return nil, err
	}
	if len(norm) == 1 {
		c := m.ElementCentroid(norm[0])
		return Point3D{X: c[0], Y: c[1], Z: m.ElementZ(norm[0])}, nil
	}
	sub, _, err := m.Mesh.subset(norm)
	if err != nil {
		return nil, err
	}
	layers := make([]int, len(norm))
	columns := make([]int, len(norm))
	for i, e := range norm {
		layers[i] = m.layers[e]
		columns[i] = m.columns[e]
	}
	return &MeshLayered{Mesh: *sub, layers: layers, columns: columns}, nil
}

// FindIndex resolves layer selectors, 3-D coordinates (nearest element),
// 2-D coordinates (the whole nearest water column) and areas (centroid
// containment across all layers) to flat element index lists.
func (m *MeshLayered) FindIndex(q Query) (IndexResult, error) {
	if q.Layers != nil {
		out, err := m.layerElements(*q.Layers)
		if err != nil {
			return IndexResult{}, err
		}
		return Flat(out), nil
	}
	if q.Area != nil {
		return m.Mesh.FindIndex(q)
	}
	x, y, haveXY := q.normXY()
	if !haveXY {
		return IndexResult{}, fmt.Errorf("%w: MeshLayered supports coords, area and layers", ErrQuery)
	}
	target := orb.Point{x, y}
	if z, haveZ := q.normZ(); haveZ {
		best, bestDist := 0, math.Inf(1)
		for e := range m.elementTable {
			dh := m.distance(target, m.ElementCentroid(e))
			dz := m.ElementZ(e) - z
			if d := math.Hypot(dh, dz); d < bestDist {
				best, bestDist = e, d
			}
		}
		return Flat([]int{best}), nil
	}
	// no z: the whole water column nearest to (x, y)
	col := m.columns[m.nearestElement(target)]
	var out []int
	for e, c := range m.columns {
		if c == col {
			out = append(out, e)
		}
	}
	return Flat(out), nil
}

// layerElements resolves a layer selector to element indices.
func (m *MeshLayered) layerElements(sel LayerSel) ([]int, error) {
	switch {
	case sel.Top:
		return m.extremeLayer(true), nil
	case sel.Bottom:
		return m.extremeLayer(false), nil
	case len(sel.Layers) > 0:
		n := m.NLayers()
		want := map[int]struct{}{}
		for _, l := range sel.Layers {
			if l < 0 {
				l += n
			}
			if l < 0 || l >= n {
				return nil, fmt.Errorf("%w: layer %d of %d", ErrIndex, l, n)
			}
			want[l] = struct{}{}
		}
		var out []int
		for e, l := range m.layers {
			if _, ok := want[l]; ok {
				out = append(out, e)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: empty layer selector", ErrQuery)
	}
}

// extremeLayer picks, per water column, the element with the highest
// (top) or lowest (bottom) layer number.
func (m *MeshLayered) extremeLayer(top bool) []int {
	best := map[int]int{} // column -> element
	for e, c := range m.columns {
		cur, ok := best[c]
		if !ok {
			best[c] = e
			continue
		}
		if (top && m.layers[e] > m.layers[cur]) || (!top && m.layers[e] < m.layers[cur]) {
			best[c] = e
		}
	}
	out := make([]int, 0, len(best))
	for _, e := range best {
		out = append(out, e)
	}
	sort.Ints(out)
	return out
}

func cloneTable(table [][]int) [][]int {
	out := make([][]int, len(table))
	for i, row := range table {
		out[i] = slices.Clone(row)
	}
	return out
}

func pickUnchecked(coords []float64, indices []int) []float64 {
	out := make([]float64, len(indices))
	for i, ix := range indices {
		out[i] = coords[ix]
	}
	return out
}
