// Package force implements the force model of a spring-electrical layout.
//
// Every [Node] is pulled toward a shared center by a Hooke's-law spring and
// pushed away from every other node by a Coulomb-like inverse-square charge:
//
//	attraction = stiffness * distance(node, center)
//	repulsion  = charge³ / distance(node, other)²
//
// [Global] sums both into the net force used by one simulation step, and
// [Apply] displaces a node by a force. All functions are pure except for the
// small random jitter [Repulsion] injects when two nodes coincide exactly.
//
// There is no damping and no clamping of force magnitude: large stiffness or
// charge values can oscillate or diverge.
package force
