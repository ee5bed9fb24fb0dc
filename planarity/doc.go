// Package planarity answers, given a drawing, whether it is still a valid
// planar embedding: no two rounded vertices share coordinates, every
// vertex's rotation system is intact, and no two non-adjacent edges'
// segments intersect.
//
// The intersection test is a binned broad-phase filter (a fixed W×W grid
// of bins that edges are rasterized into) followed by a brute-force
// per-bin pairwise check — see bins.go and intersect.go. The rotation
// system check lives in rotsys.go. Validator in validator.go composes
// both into the four operations the rest of latticedraw calls:
// VertexOverlapOK, RotSysOK, CheckAfterMove, CheckFull.
package planarity
