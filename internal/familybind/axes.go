package familybind

// Dimension is one value of the dimension axis, pairing a tensor rank with
// the display fragment used to compose exposure names.
type Dimension struct {
	Rank     int
	Fragment string
}

// ScalarKind tags the element type of a tensor instantiation.
type ScalarKind int

const (
	Float ScalarKind = iota
	Double
)

// Scalar is one value of the scalar-kind axis.
type Scalar struct {
	Kind     ScalarKind
	Fragment string
}

// Dimensions is the canonical dimension axis: ranks 1 through 6. The list is
// fixed in source and ordered; extending it means recompiling.
var Dimensions = []Dimension{
	{Rank: 1, Fragment: "1d"},
	{Rank: 2, Fragment: "2d"},
	{Rank: 3, Fragment: "3d"},
	{Rank: 4, Fragment: "4d"},
	{Rank: 5, Fragment: "5d"},
	{Rank: 6, Fragment: "6d"},
}

// Scalars is the canonical scalar-kind axis.
var Scalars = []Scalar{
	{Kind: Float, Fragment: "f"},
	{Kind: Double, Fragment: "d"},
}
