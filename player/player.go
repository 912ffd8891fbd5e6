// Package player provides playback state management on top of animation
// tracks: a Player holds any number of heterogeneous tracks, maps absolute
// application time to an in-duration keyframe and distributes the
// interpolated results to destinations or callbacks.
//
// The player is deliberately stateless about time itself. It neither reads a
// clock nor keeps a notion of "current time"; all time-dependent calls take
// absolute time as a parameter and the caller drives [Player.Advance] every
// frame. Time doesn't have to be monotonic or have constant speed, though
// backward jumps rescan keyframes and perform worse than going forward.
//
// Long-running applications should not keep global time in a float key type,
// as precision deteriorates within hours. Use a [time.Duration] time type
// with [NanosecondScaler] and keep track keys as float seconds instead.
package player

import (
	"fmt"

	anim "github.com/tphakala/go-anim"
	"github.com/tphakala/go-anim/vmath"
)

// State is the playback state of a [Player].
type State uint8

const (
	// StateStopped is the initial state. Playing starts from the beginning
	// of the duration.
	StateStopped State = iota

	// StatePlaying means Advance updates track destinations and fires
	// callbacks.
	StatePlaying

	// StatePaused retains the position the animation was paused at; playing
	// continues from there.
	StatePaused
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	}
	return fmt.Sprintf("State(0x%x)", uint8(s))
}

// Range is a one-dimensional keyframe range, usually the combined duration
// of all tracks added to a player.
type Range[K anim.Key] struct {
	Min, Max K
}

// Size returns the length of the range.
func (r Range[K]) Size() K { return r.Max - r.Min }

func joinRange[K anim.Key](a, b Range[K]) Range[K] {
	if b.Min < a.Min {
		a.Min = b.Min
	}
	if b.Max > a.Max {
		a.Max = b.Max
	}
	return a
}

// Scaler converts time elapsed since play start to a play iteration index
// and a key offset inside that iteration. The duration passed in is the size
// of the player's duration range and is guaranteed to be non-zero, the
// player handles zero durations itself.
type Scaler[T, K anim.Key] func(timeFromStart T, duration K) (iteration uint32, key K)

// NanosecondScaler is a [Scaler] for players keeping time as [time.Duration]
// while track keys stay float seconds. The iteration index is computed with
// integer arithmetic, so precision doesn't degrade even after the player ran
// for years.
func NanosecondScaler[T ~int64, K vmath.Float](timeFromStart T, duration K) (uint32, K) {
	d := T(float64(duration) * 1e9)
	i := timeFromStart / d
	return uint32(i), K(float64(timeFromStart-i*d) / 1e9)
}

func defaultScaler[T, K anim.Key](timeFromStart T, duration K) (uint32, K) {
	t := float64(timeFromStart)
	d := float64(duration)
	i := uint32(t / d)
	return i, K(t - float64(i)*d)
}

type track[K anim.Key] struct {
	advance func(key K, hint *int)
	hint    int
}

// Player maps absolute time of type T to keys of type K and distributes
// interpolated values of any number of added tracks. The zero value is not
// usable, construct with [New] or [NewWithScaler].
//
// A player is in [StateStopped] until [Player.Play] is called with the time
// the animation should start at; from then on every [Player.Advance] call
// updates the destinations registered via [Add], [AddWithCallback] or
// [AddWithCallbackOnChange].
//
// Once the whole duration of all play-count iterations is exhausted, Advance
// performs one final update with values at the duration end time, parking
// the animation there, and the state becomes [StateStopped] again. Stopping
// explicitly parks at the duration begin time instead; pausing parks at the
// pause time. Callbacks only ever fire from within Advance, never from
// [Player.Pause], [Player.Stop] or the seek calls.
type Player[T, K anim.Key] struct {
	tracks      []track[K]
	duration    Range[K]
	durationSet bool
	playCount   uint32
	state       State
	startTime   T
	pauseTime   T
	pending     bool
	finished    bool
	scaler      Scaler[T, K]
}

// New creates a stopped player with play count 1 and a scaler dividing time
// by the duration in float64.
func New[T, K anim.Key]() *Player[T, K] {
	return NewWithScaler(defaultScaler[T, K])
}

// NewWithScaler creates a stopped player with a custom time-to-key scaler.
func NewWithScaler[T, K anim.Key](scaler Scaler[T, K]) *Player[T, K] {
	if scaler == nil {
		panic("player: scaler must not be nil")
	}
	return &Player[T, K]{playCount: 1, scaler: scaler}
}

// Duration returns the combined duration of all added tracks, or the value
// set with [Player.SetDuration].
func (p *Player[T, K]) Duration() Range[K] { return p.duration }

// SetDuration overwrites the implicitly calculated duration. Adding a track
// afterwards extends the duration again to span all track durations. A
// duration extending beyond the keyframes extrapolates boundary values per
// each track's extrapolation policy, a shorter one plays just a slice.
//
// Modifying the duration while playing may cause the animation to jump or
// abruptly stop on the next [Player.Advance].
func (p *Player[T, K]) SetDuration(duration Range[K]) *Player[T, K] {
	p.duration = duration
	p.durationSet = true
	return p
}

// PlayCount returns the number of times the duration is played.
func (p *Player[T, K]) PlayCount() uint32 { return p.playCount }

// SetPlayCount sets how many times the duration is played. The default is 1;
// 0 repeats indefinitely.
func (p *Player[T, K]) SetPlayCount(count uint32) *Player[T, K] {
	p.playCount = count
	return p
}

// Len returns the number of added tracks.
func (p *Player[T, K]) Len() int { return len(p.tracks) }

// State returns the current playback state.
func (p *Player[T, K]) State() State { return p.state }

// Play starts playing at the given start time. If already playing, the
// animation restarts from the beginning; if paused, it continues from where
// it was paused. A start time in the future makes [Player.Advance] do
// nothing until that point, which can synchronize playback of multiple
// independent clips.
func (p *Player[T, K]) Play(startTime T) *Player[T, K] {
	if p.state == StatePaused {
		p.startTime = startTime - (p.pauseTime - p.startTime)
	} else {
		p.startTime = startTime
	}
	p.state = StatePlaying
	p.pending = false
	p.finished = false
	var zero T
	p.pauseTime = zero
	return p
}

// Resume is like [Player.Play] except it doesn't restart from the beginning
// when the player is already playing.
func (p *Player[T, K]) Resume(startTime T) *Player[T, K] {
	if p.state == StatePlaying {
		return p
	}
	return p.Play(startTime)
}

// Pause pauses the playing animation at the given time. Does nothing unless
// playing. The next [Player.Advance] performs one update with values at the
// pause time, parking the animation there; a pause time past the duration
// end parks at the end without stopping.
func (p *Player[T, K]) Pause(pauseTime T) *Player[T, K] {
	if p.state != StatePlaying {
		return p
	}
	p.state = StatePaused
	p.pauseTime = pauseTime
	p.pending = true
	return p
}

// Stop stops a playing or paused animation, discarding any pause
// information. The next [Player.Advance] performs one update with values at
// the duration begin time, parking the animation back at its initial state.
// Does nothing when already stopped.
func (p *Player[T, K]) Stop() *Player[T, K] {
	if p.state == StateStopped {
		return p
	}
	p.state = StateStopped
	p.pending = true
	p.finished = false
	return p
}

// SeekBy jumps the animation forward or backward by the given time delta.
// Does nothing when stopped. The seek is not clamped, so seeking a playing
// animation too far back makes it wait to be played in the future.
func (p *Player[T, K]) SeekBy(timeDelta T) *Player[T, K] {
	switch p.state {
	case StatePlaying:
		p.startTime -= timeDelta
	case StatePaused:
		p.pauseTime += timeDelta
		p.pending = true
	}
	return p
}

// SeekTo jumps to the given animation time at the given absolute time. Does
// nothing when stopped. Like [Player.SeekBy] the seek is not clamped.
func (p *Player[T, K]) SeekTo(seekTime, animationTime T) *Player[T, K] {
	switch p.state {
	case StatePlaying:
		p.startTime = seekTime - animationTime
	case StatePaused:
		p.pauseTime = p.startTime + animationTime
		p.pending = true
	}
	return p
}

// SetState calls [Player.Play], [Player.Pause] or [Player.Stop] based on the
// given state. The time parameter is ignored for [StateStopped].
func (p *Player[T, K]) SetState(state State, time T) *Player[T, K] {
	switch state {
	case StatePlaying:
		return p.Play(time)
	case StatePaused:
		return p.Pause(time)
	case StateStopped:
		return p.Stop()
	}
	panic(fmt.Sprintf("player: invalid state %v", state))
}

// Elapsed returns the repeat iteration index and the elapsed keyframe inside
// that iteration corresponding to the given time. A player stopped
// explicitly (or never played) reports zero values; a player stopped by
// running out reports the play count and the duration end key; a paused
// player reports the pause position. Unlike [Player.Advance] this is a pure
// query and doesn't modify the player.
func (p *Player[T, K]) Elapsed(time T) (uint32, K) {
	switch p.state {
	case StateStopped:
		if p.finished {
			return p.playCount, p.duration.Max
		}
		var zero K
		return 0, zero
	case StatePaused:
		return p.pausedPosition()
	}
	if time < p.startTime {
		return 0, p.duration.Min
	}
	iteration, key, done := p.position(time)
	if done {
		return p.playCount, p.duration.Max
	}
	return iteration, key
}

// position maps an absolute time at or past the start time to the iteration
// index and absolute key, reporting whether the play count got exhausted.
func (p *Player[T, K]) position(time T) (uint32, K, bool) {
	size := p.duration.Size()
	if size == 0 {
		return 0, p.duration.Min, p.playCount != 0
	}
	iteration, key := p.scaler(time-p.startTime, size)
	if p.playCount != 0 && iteration >= p.playCount {
		return iteration, p.duration.Max, true
	}
	return iteration, p.duration.Min + key, false
}

func (p *Player[T, K]) pausedPosition() (uint32, K) {
	if p.pauseTime <= p.startTime {
		return 0, p.duration.Min
	}
	iteration, key, done := p.position(p.pauseTime)
	if done {
		return p.playCount, p.duration.Max
	}
	return iteration, key
}

// Advance advances the animation to the given time. While playing, all
// added tracks are queried in insertion order and their destinations updated
// or callbacks fired; a time before the start time does nothing. When the
// play count gets exhausted at the given time, one final update with values
// at the duration end time parks the animation and the state becomes
// [StateStopped].
//
// While paused or stopped the function does nothing, except for a single
// parking update right after a [Player.Pause], [Player.Stop] or seek call.
func (p *Player[T, K]) Advance(time T) *Player[T, K] {
	switch p.state {
	case StateStopped:
		if !p.pending {
			return p
		}
		p.pending = false
		p.updateAll(p.duration.Min)
	case StatePaused:
		if !p.pending {
			return p
		}
		p.pending = false
		_, key := p.pausedPosition()
		p.updateAll(key)
	case StatePlaying:
		if time < p.startTime {
			return p
		}
		_, key, done := p.position(time)
		if done {
			p.state = StateStopped
			p.finished = true
			p.pending = false
		}
		p.updateAll(key)
	}
	return p
}

func (p *Player[T, K]) updateAll(key K) {
	for i := range p.tracks {
		p.tracks[i].advance(key, &p.tracks[i].hint)
	}
}

func (p *Player[T, K]) addTrack(keys Range[K], empty bool, advance func(K, *int)) {
	if !empty {
		if p.durationSet {
			p.duration = joinRange(p.duration, keys)
		} else {
			p.duration = keys
			p.durationSet = true
		}
	}
	p.tracks = append(p.tracks, track[K]{advance: advance})
}

func trackDuration[K anim.Key, V, R any, F vmath.Float](t anim.TrackView[K, V, R, F]) (Range[K], bool) {
	if t.Len() == 0 {
		return Range[K]{}, true
	}
	from, to := t.Duration()
	return Range[K]{Min: from, Max: to}, false
}

// Add registers a track whose interpolation result is written to destination
// on every [Player.Advance] while the animation is playing. The player
// extends its duration to span the track's keyframe range.
//
// The track view is stored by value, the underlying keyframe storage must
// outlive the player. Add is a free function as the value and result types
// differ per track while the player only depends on the time and key types.
func Add[T, K anim.Key, V, R any, F vmath.Float](p *Player[T, K], track anim.TrackView[K, V, R, F], destination *R) *Player[T, K] {
	if destination == nil {
		panic("player: destination must not be nil")
	}
	duration, empty := trackDuration(track)
	p.addTrack(duration, empty, func(key K, hint *int) {
		*destination = track.AtHint(key, hint)
	})
	return p
}

// AddWithCallback registers a track whose interpolation result is passed to
// callback on every [Player.Advance] while the animation is playing. The key
// passed to the callback is never outside the player's duration, with the
// result always corresponding to it.
func AddWithCallback[T, K anim.Key, V, R any, F vmath.Float](p *Player[T, K], track anim.TrackView[K, V, R, F], callback func(key K, result R)) *Player[T, K] {
	if callback == nil {
		panic("player: callback must not be nil")
	}
	duration, empty := trackDuration(track)
	p.addTrack(duration, empty, func(key K, hint *int) {
		callback(key, track.AtHint(key, hint))
	})
	return p
}

// AddWithCallbackOnChange combines [Add] and [AddWithCallback]: on every
// [Player.Advance] the new result is compared to destination and only when
// it differs the callback fires and destination is updated. Useful for
// triggering discrete events from sparse tracks.
func AddWithCallbackOnChange[T, K anim.Key, V any, R comparable, F vmath.Float](p *Player[T, K], track anim.TrackView[K, V, R, F], callback func(key K, result R), destination *R) *Player[T, K] {
	if callback == nil {
		panic("player: callback must not be nil")
	}
	if destination == nil {
		panic("player: destination must not be nil")
	}
	duration, empty := trackDuration(track)
	p.addTrack(duration, empty, func(key K, hint *int) {
		result := track.AtHint(key, hint)
		if result == *destination {
			return
		}
		callback(key, result)
		*destination = result
	})
	return p
}
