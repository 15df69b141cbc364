package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// bvhNode is one entry of the flattened hierarchy. Leaves reference a
// primitive by index; internal nodes reference their children by index.
type bvhNode struct {
	box       core.AABB
	left      int
	right     int
	primitive int // -1 for internal nodes
}

func (n *bvhNode) isLeaf() bool {
	return n.primitive >= 0
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// Nodes live in a flat slice; index 0 is the root.
type BVH struct {
	nodes      []bvhNode
	primitives []core.Node
}

// NewBVH builds a hierarchy over nodes. The input slice is not modified.
func NewBVH(nodes []core.Node) *BVH {
	bvh := &BVH{primitives: make([]core.Node, len(nodes))}
	copy(bvh.primitives, nodes)

	if len(bvh.primitives) > 0 {
		bvh.nodes = make([]bvhNode, 0, 2*len(bvh.primitives)-1)
		bvh.build(0, len(bvh.primitives))
	}
	return bvh
}

// build creates the subtree over primitives[start:end] and returns its index
func (b *BVH) build(start, end int) int {
	index := len(b.nodes)
	count := end - start

	if count == 1 {
		b.nodes = append(b.nodes, bvhNode{
			box:       b.primitives[start].BoundingBox(),
			left:      -1,
			right:     -1,
			primitive: start,
		})
		return index
	}

	span := b.primitives[start:end]
	box := core.EmptyAABB
	for _, p := range span {
		box = box.Union(p.BoundingBox())
	}
	axis := box.LongestAxis()

	// Two primitives become two leaves without sorting
	if count > 2 {
		sort.SliceStable(span, func(i, j int) bool {
			return span[i].BoundingBox().Centroid(axis) < span[j].BoundingBox().Centroid(axis)
		})
	}

	b.nodes = append(b.nodes, bvhNode{box: box, primitive: -1})
	mid := start + count/2
	left := b.build(start, mid)
	right := b.build(mid, end)
	b.nodes[index].left = left
	b.nodes[index].right = right

	return index
}

// Hit returns the closest intersection among all primitives
func (b *BVH) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	if len(b.nodes) == 0 {
		return nil, false
	}
	return b.hitNode(0, ray, rayT)
}

func (b *BVH) hitNode(index int, ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	node := &b.nodes[index]
	if !node.box.Hit(ray, rayT) {
		return nil, false
	}

	if node.isLeaf() {
		return b.primitives[node.primitive].Hit(ray, rayT)
	}

	leftHit, hitLeft := b.hitNode(node.left, ray, rayT)
	if hitLeft {
		rayT.Max = leftHit.T
	}
	if rightHit, hitRight := b.hitNode(node.right, ray, rayT); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the root box, or an empty box for an empty hierarchy
func (b *BVH) BoundingBox() core.AABB {
	if len(b.nodes) == 0 {
		return core.EmptyAABB
	}
	return b.nodes[0].box
}

// PDFValue returns the mean density over all primitives, as a Group would
func (b *BVH) PDFValue(origin, direction core.Vec3) float64 {
	return meanPDFValue(b.primitives, origin, direction)
}

// RandomDirection samples a uniformly chosen primitive, as a Group would
func (b *BVH) RandomDirection(origin core.Vec3, random core.Random) core.Vec3 {
	return pickRandomDirection(b.primitives, origin, random)
}

// Len returns the number of primitives
func (b *BVH) Len() int {
	return len(b.primitives)
}

// Depth returns the height of the tree (0 when empty)
func (b *BVH) Depth() int {
	if len(b.nodes) == 0 {
		return 0
	}
	return b.depth(0)
}

func (b *BVH) depth(index int) int {
	node := &b.nodes[index]
	if node.isLeaf() {
		return 1
	}
	return 1 + max(b.depth(node.left), b.depth(node.right))
}
