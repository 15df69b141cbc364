package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// Group is an unordered collection of nodes tested one after another.
// It is also the light list handed to the integrator.
type Group struct {
	nodes []core.Node
	bbox  core.AABB
}

// NewGroup creates a group from the given nodes
func NewGroup(nodes ...core.Node) *Group {
	g := &Group{bbox: core.EmptyAABB}
	for _, node := range nodes {
		g.Add(node)
	}
	return g
}

// Add appends a node. Groups must not be modified once rendering starts.
func (g *Group) Add(node core.Node) {
	g.nodes = append(g.nodes, node)
	g.bbox = g.bbox.Union(node.BoundingBox())
}

// Nodes returns the group's children
func (g *Group) Nodes() []core.Node {
	return g.nodes
}

// Len returns the number of children. A nil group is empty.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.nodes)
}

// Hit returns the closest hit among all children
func (g *Group) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	for _, node := range g.nodes {
		if hit, ok := node.Hit(ray, rayT); ok {
			rayT.Max = hit.T
			closest = hit
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the union of the children's boxes
func (g *Group) BoundingBox() core.AABB {
	return g.bbox
}

// PDFValue returns the mean of the children's densities
func (g *Group) PDFValue(origin, direction core.Vec3) float64 {
	return meanPDFValue(g.nodes, origin, direction)
}

// RandomDirection samples a uniformly chosen child. An empty group returns
// the zero vector.
func (g *Group) RandomDirection(origin core.Vec3, random core.Random) core.Vec3 {
	return pickRandomDirection(g.nodes, origin, random)
}

func meanPDFValue(nodes []core.Node, origin, direction core.Vec3) float64 {
	if len(nodes) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(nodes))
	sum := 0.0
	for _, node := range nodes {
		sum += weight * node.PDFValue(origin, direction)
	}
	return sum
}

func pickRandomDirection(nodes []core.Node, origin core.Vec3, random core.Random) core.Vec3 {
	if len(nodes) == 0 {
		return core.Vec3{}
	}
	return nodes[random.RandIntInterval(0, len(nodes))].RandomDirection(origin, random)
}
