// Package fold segments (windows) an N-dimensional array along one axis
// into fixed-size, possibly overlapping segments without duplicating the
// overlapping elements in memory.
//
// The pipeline is: resolve the size/overlap specification (ResolveSize),
// pad the tail of the axis so the step evenly divides it (Pad), then build
// a strided view with an inserted segment axis (Fold) or enumerate the
// segments lazily (Segments). An attached validity mask is transformed in
// lockstep with the data through every step.
//
// When overlap is nonzero the folded view contains multiple entries backed
// by the same memory location; in-place writes through one segment are
// visible through every aliasing segment.
//
// Rebin and CountRepeats are small utilities built on the fold engine for
// time-series rebinning and per-index multiplicity weighting.
package fold
