// Package hillclimb implements the optional post-annealing local-search
// polish: for every vertex, try all eight integer-offset neighbors and move
// to whichever strictly improves that vertex's own rounding cost and keeps
// the drawing a valid planar embedding, repeating until no vertex can
// improve any further.
package hillclimb
