package generator

import (
	"dungeongen/pkg/engine/random"
	"dungeongen/pkg/engine/world"
)

// BSPGenerator generates maps using Binary Space Partitioning: the area is
// split recursively, each leaf gets one room, and sibling subtrees are
// joined with L-shaped corridors.
type BSPGenerator struct {
	cfg Config
}

// NewBSPGenerator creates a generator using cfg. RoomAttempts and DoorChance are not used.
func NewBSPGenerator(cfg Config) *BSPGenerator {
	return &BSPGenerator{cfg: cfg}
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *Placement
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// Constants for BSP generation
const (
	minNodeSize    = 8 // Minimum size of a BSP node
	minBSPRoomSize = 3 // Minimum size of a room
	roomPadding    = 2 // Padding between room and node edge
)

// bsp holds the state of one generation
type bsp struct {
	rng random.Source
}

// Generate creates a new grid using the BSP algorithm
func (g *BSPGenerator) Generate(rng random.Source) (*world.Grid, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	log := g.cfg.logger().With("generator", g.Name())

	area, err := world.NewArea(g.cfg.Width, g.cfg.Height)
	if err != nil {
		return nil, err
	}

	b := &bsp{rng: rng}

	// Leave a 1 cell border for perimeter walls
	root := &bspNode{x: 1, y: 1, width: g.cfg.Width - 2, height: g.cfg.Height - 2}
	b.split(root)
	b.createRooms(root)

	rooms := collectRooms(root)
	for _, r := range rooms {
		area, err = area.Stamp(world.MustNewGrid(r.Width, r.Height, world.Space), r.Origin)
		if err != nil {
			return nil, err
		}
	}

	open := b.connect(root, nil)
	area = area.Map(func(x, y int, c world.Cell) world.Cell {
		if open[world.Coord{X: x, Y: y}] {
			return world.Space
		}
		return c
	})
	log.Debug("rooms carved", "rooms", len(rooms), "corridor_cells", len(open))

	if err := validateOutput(area, g.cfg); err != nil {
		return nil, err
	}
	return area, nil
}

// split recursively splits a BSP node
func (b *bsp) split(node *bspNode) {
	canSplitX := node.width >= minNodeSize*2
	canSplitY := node.height >= minNodeSize*2

	// Decide split direction: prefer cutting the longer side
	var horizontal bool
	switch {
	case canSplitX && canSplitY && node.width == node.height:
		horizontal = b.rng.PercentChance(50)
	case canSplitX && (node.width > node.height || !canSplitY):
		horizontal = false
	case canSplitY:
		horizontal = true
	default:
		return // Too small to split
	}

	if horizontal {
		// Top and bottom
		at := b.rng.UniformInt(minNodeSize, node.height-minNodeSize+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: at}
		node.right = &bspNode{x: node.x, y: node.y + at, width: node.width, height: node.height - at}
	} else {
		// Left and right
		at := b.rng.UniformInt(minNodeSize, node.width-minNodeSize+1)
		node.left = &bspNode{x: node.x, y: node.y, width: at, height: node.height}
		node.right = &bspNode{x: node.x + at, y: node.y, width: node.width - at, height: node.height}
	}

	b.split(node.left)
	b.split(node.right)
}

// createRooms creates one room in every leaf large enough to hold one
func (b *bsp) createRooms(node *bspNode) {
	if !node.isLeaf() {
		b.createRooms(node.left)
		b.createRooms(node.right)
		return
	}

	maxW := node.width - roomPadding
	maxH := node.height - roomPadding
	if maxW < minBSPRoomSize || maxH < minBSPRoomSize {
		return
	}

	w := b.rng.UniformInt(minBSPRoomSize, maxW+1)
	h := b.rng.UniformInt(minBSPRoomSize, maxH+1)
	node.room = &Placement{
		Origin: world.Coord{
			X: node.x + b.rng.UniformInt(0, node.width-w),
			Y: node.y + b.rng.UniformInt(0, node.height-h),
		},
		Width:  w,
		Height: h,
	}
}

// connect joins a room from each pair of sibling subtrees with a corridor,
// adding the corridor cells to open. It returns open.
func (b *bsp) connect(node *bspNode, open map[world.Coord]bool) map[world.Coord]bool {
	if open == nil {
		open = make(map[world.Coord]bool)
	}
	if node.isLeaf() {
		return open
	}

	from, to := b.pickRoom(node.left), b.pickRoom(node.right)
	if from != nil && to != nil {
		a := center(*from)
		z := center(*to)
		if b.rng.PercentChance(50) {
			// Horizontal first, then vertical
			carveLine(open, a, world.Coord{X: z.X, Y: a.Y})
			carveLine(open, world.Coord{X: z.X, Y: a.Y}, z)
		} else {
			// Vertical first, then horizontal
			carveLine(open, a, world.Coord{X: a.X, Y: z.Y})
			carveLine(open, world.Coord{X: a.X, Y: z.Y}, z)
		}
	}

	b.connect(node.left, open)
	b.connect(node.right, open)
	return open
}

// pickRoom returns a room from a subtree, choosing randomly between branches
func (b *bsp) pickRoom(node *bspNode) *Placement {
	if node.isLeaf() {
		return node.room
	}

	left, right := b.pickRoom(node.left), b.pickRoom(node.right)
	switch {
	case left != nil && right != nil:
		if b.rng.PercentChance(50) {
			return left
		}
		return right
	case left != nil:
		return left
	default:
		return right
	}
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []Placement {
	if node.isLeaf() {
		if node.room == nil {
			return nil
		}
		return []Placement{*node.room}
	}
	return append(collectRooms(node.left), collectRooms(node.right)...)
}

func center(p Placement) world.Coord {
	return world.Coord{X: p.Origin.X + p.Width/2, Y: p.Origin.Y + p.Height/2}
}

// carveLine opens every cell on the straight line between a and z inclusive.
// a and z must share a row or a column.
func carveLine(open map[world.Coord]bool, a, z world.Coord) {
	dx, dy := sign(z.X-a.X), sign(z.Y-a.Y)
	for c := a; ; c = c.Add(dx, dy) {
		open[c] = true
		if c == z {
			return
		}
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

var _ GridGenerator = (*BSPGenerator)(nil)
