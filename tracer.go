package glyphtrace

// Default number of points sampled for each Bézier arc.
const DefaultSegments = 5

// A Tracer converts glyph outlines into line approximations. It holds
// the configuration shared by all the arcs traced: the number of points
// sampled per arc and whether malformed cubic control points should be
// tolerated or reported.
//
// Tracers don't keep any state between calls, so a single Tracer can
// be used concurrently as long as it's not being reconfigured at the
// same time. The zero value is not usable; create tracers with
// [NewTracer]().
type Tracer struct {
	segments int
	strict   bool
}

// Creates a new lenient [Tracer] sampling [DefaultSegments] points per arc.
func NewTracer() *Tracer {
	return &Tracer{segments: DefaultSegments}
}

// Sets the number of points sampled for each Bézier arc, including
// both arc endpoints. Values below 2 are not rejected here, but any
// tracing operation will fail with [ErrInvalidSampleCount].
func (self *Tracer) SetSegments(segments int) {
	self.segments = segments
}

// Returns the number of points sampled for each Bézier arc.
func (self *Tracer) Segments() int { return self.segments }

// Sets whether the tracer should run in strict mode. By default,
// unpaired cubic control points are silently skipped, like most
// outline consumers do. In strict mode they are reported with
// [ErrUnpairedCubic] instead, and cubic pairs must be surrounded
// by on-curve points.
func (self *Tracer) SetStrict(strict bool) {
	self.strict = strict
}

// Returns whether the tracer is in strict mode.
func (self *Tracer) Strict() bool { return self.strict }

// Returns a signature for the current configuration, to be used with
// glyph caches. The lowest 32 bits encode the segment count and the
// next bit the strict mode.
func (self *Tracer) Signature() uint64 {
	sig := uint64(uint32(self.segments))
	if self.strict { sig |= 1 << 32 }
	return sig
}
