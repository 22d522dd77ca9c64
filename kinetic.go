package chartpane

import (
	"math"
	"time"
)

// Default kinetic-scroll tuning. Speeds are in pixels per millisecond,
// the dumping coefficient is applied per millisecond of elapsed time.
const (
	DefaultMinScrollSpeed = 0.2
	DefaultMaxScrollSpeed = 7.0
	DefaultScrollDumping  = 0.997
	DefaultScrollMinMove  = 15.0
)

// Samples older than this relative to the newest one no longer describe
// the gesture and are dropped from the velocity estimate.
const kineticSampleWindow = 200 * time.Millisecond

// At most this many recent samples are kept; averaging over a few
// samples makes the velocity estimate robust to single-sample noise.
const kineticSampleCount = 3

type kineticSample struct {
	position float64
	time     time.Time
}

type kineticState int

const (
	kineticIdle kineticState = iota
	kineticSampling
	kineticRunning
	kineticTerminated
)

// KineticAnimation extrapolates a decaying scroll position from the
// recent history of a drag gesture. The trajectory is deterministic
// given identical recorded (position, timestamp) pairs.
//
// Lifecycle: AddPosition is called on every pointer move while the drag
// is active; Start arms the animation at release; Position and Finished
// are sampled on each animation tick; Terminate cancels externally.
// After Terminate, Position must not be called; callers check
// Terminated first on every scheduled tick.
type KineticAnimation struct {
	minSpeed float64
	maxSpeed float64
	dumping  float64
	minMove  float64

	state   kineticState
	samples []kineticSample

	startPosition float64
	startTime     time.Time
	speed         float64 // px per millisecond, signed
	duration      float64 // ms until speed decays to minSpeed
	terminalMove  float64 // total distance covered by the full trajectory
}

// NewKineticAnimation creates an animation with explicit tuning.
// Use NewDefaultKineticAnimation for the standard chart feel.
func NewKineticAnimation(minSpeed, maxSpeed, dumping, minMove float64) *KineticAnimation {
	return &KineticAnimation{
		minSpeed: minSpeed,
		maxSpeed: maxSpeed,
		dumping:  dumping,
		minMove:  minMove,
		samples:  make([]kineticSample, 0, kineticSampleCount),
	}
}

// NewDefaultKineticAnimation creates an animation with the default
// scroll tuning.
func NewDefaultKineticAnimation() *KineticAnimation {
	return NewKineticAnimation(
		DefaultMinScrollSpeed,
		DefaultMaxScrollSpeed,
		DefaultScrollDumping,
		DefaultScrollMinMove,
	)
}

// AddPosition records a drag displacement sample. Ignored once the
// animation is running or terminated.
func (a *KineticAnimation) AddPosition(position float64, now time.Time) {
	if a.state != kineticIdle && a.state != kineticSampling {
		return
	}
	a.state = kineticSampling

	// Drop samples that fell out of the gesture window.
	kept := a.samples[:0]
	for _, s := range a.samples {
		if now.Sub(s.time) <= kineticSampleWindow {
			kept = append(kept, s)
		}
	}
	a.samples = kept
	if len(a.samples) == kineticSampleCount {
		copy(a.samples, a.samples[1:])
		a.samples = a.samples[:kineticSampleCount-1]
	}
	a.samples = append(a.samples, kineticSample{position: position, time: now})
}

// Start arms the animation at the release position. The initial velocity
// comes from the recorded history, clamped to [minSpeed, maxSpeed]; a
// velocity below minSpeed leaves the animation finished with no motion.
func (a *KineticAnimation) Start(position float64, now time.Time) {
	if a.state == kineticTerminated || a.state == kineticRunning {
		return
	}
	speed, ok := a.estimateSpeed(position, now)
	if !ok {
		return
	}

	a.speed = speed

	// Duration until the decaying speed drops to minSpeed:
	// |speed| * dumping^t = minSpeed.
	a.duration = math.Log(a.minSpeed/math.Abs(speed)) / math.Log(a.dumping)
	a.terminalMove = a.integrate(a.duration)
	if math.Abs(a.terminalMove) < a.minMove {
		// The whole trajectory moves less than the minimal move;
		// not worth animating.
		return
	}

	a.state = kineticRunning
	a.startPosition = position
	a.startTime = now
}

// estimateSpeed derives the signed release velocity from the sample
// history, in px/ms. Returns false when the history is too thin or the
// velocity is below the minimum threshold.
func (a *KineticAnimation) estimateSpeed(position float64, now time.Time) (float64, bool) {
	if len(a.samples) == 0 {
		return 0, false
	}
	oldest := a.samples[0]
	dt := float64(now.Sub(oldest.time)) / float64(time.Millisecond)
	if dt <= 0 {
		return 0, false
	}
	speed := (position - oldest.position) / dt
	if math.Abs(speed) < a.minSpeed {
		return 0, false
	}
	if math.Abs(speed) > a.maxSpeed {
		speed = math.Copysign(a.maxSpeed, speed)
	}
	return speed, true
}

// integrate returns the displacement after elapsed milliseconds of the
// exponentially decaying velocity.
func (a *KineticAnimation) integrate(elapsedMs float64) float64 {
	return a.speed * (math.Pow(a.dumping, elapsedMs) - 1) / math.Log(a.dumping)
}

func (a *KineticAnimation) elapsedMs(now time.Time) float64 {
	elapsed := float64(now.Sub(a.startTime)) / float64(time.Millisecond)
	if elapsed < 0 {
		return 0
	}
	if elapsed > a.duration {
		return a.duration
	}
	return elapsed
}

// Position returns the extrapolated scroll position at the given time.
// Only valid while the animation is running; monotonic in the direction
// of the initial velocity and asymptotically approaching its limit.
func (a *KineticAnimation) Position(now time.Time) float64 {
	return a.startPosition + a.integrate(a.elapsedMs(now))
}

// Finished reports whether the trajectory is exhausted at the given
// time: the speed decayed below the minimum, the residual movement is
// below the minimal-move threshold, or Start never armed the animation.
func (a *KineticAnimation) Finished(now time.Time) bool {
	if a.state != kineticRunning {
		return true
	}
	elapsed := a.elapsedMs(now)
	if elapsed >= a.duration {
		return true
	}
	remaining := math.Abs(a.terminalMove - a.integrate(elapsed))
	return remaining < a.minMove
}

// Terminate cancels the animation. A terminated animation produces no
// further side effects; stale ticks must check Terminated and drop out.
func (a *KineticAnimation) Terminate() {
	a.state = kineticTerminated
}

// Terminated reports whether Terminate was called.
func (a *KineticAnimation) Terminated() bool {
	return a.state == kineticTerminated
}
