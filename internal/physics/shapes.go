package physics

// Reference asteroid outline, unit radius, in perimeter order A..H.
// B, D and H are the outer spikes; A and C are reflex corners, so the
// outline is concave and needs a triangle decomposition for overlap tests.
var AsteroidVertices = [8]Vec2{
	{-0.3, 0.4},  // A
	{0.0, 1.0},   // B
	{0.3, 0.4},   // C
	{1.0, 0.0},   // D
	{0.6, -0.6},  // E
	{0.0, -0.8},  // F
	{-0.6, -0.6}, // G
	{-1.0, 0.0},  // H
}

// Vertex indices into AsteroidVertices.
const (
	vA = iota
	vB
	vC
	vD
	vE
	vF
	vG
	vH
)

// AsteroidTriangles decomposes the asteroid outline as ABC, CDE, EFC, CFA, AFG, GAH.
var AsteroidTriangles = [6][3]int{
	{vA, vB, vC},
	{vC, vD, vE},
	{vE, vF, vC},
	{vC, vF, vA},
	{vA, vF, vG},
	{vG, vA, vH},
}

// AsteroidTips are the vertices owned by a single triangle: the points that
// can pierce a ship without any ship vertex entering the asteroid.
var AsteroidTips = [3]int{vB, vD, vH}

// ShipTriangle is the player hull at unit scale, nose first.
// Rotation 0 points the nose along +Y.
var ShipTriangle = Triangle{
	{0.0, 1.0},
	{-0.6, -0.8},
	{0.6, -0.8},
}
