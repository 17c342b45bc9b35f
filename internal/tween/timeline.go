// Package tween schedules time-based property interpolations and delayed calls on a single-threaded Timeline.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultDuration is the duration, in seconds, used by Defaults.
const DefaultDuration = 0.5

// Property is a single animatable float value, identified by its path (i.e. "camera.position.x").
// Two Properties with the same path are considered the same value.
type Property struct {
	Path string
	Get  func() float32
	Set  func(float32)
}

// Float returns a Property reading and writing the float32 pointed to.
func Float(path string, value *float32) Property {
	return Property{
		Path: path,
		Get:  func() float32 { return *value },
		Set:  func(v float32) { *value = v },
	}
}

// Options control how a tween plays.
type Options struct {
	Duration float32        // Duration in seconds; 0 applies the target value as soon as the delay elapses.
	Delay    float32        // Delay in seconds before the tween reads its start value and begins.
	Ease     ease.TweenFunc // Easing function; nil uses ease.OutQuad.
	Repeat   int            // Additional plays after the first; -1 repeats forever.
	Yoyo     bool           // If repeats alternate direction.
}

// Defaults returns Options for a DefaultDuration, out-quad tween.
func Defaults() Options {
	return Over(DefaultDuration)
}

// Over returns Options for an out-quad tween of the given duration.
func Over(duration float32) Options {
	return Options{Duration: duration, Ease: ease.OutQuad}
}

// Instant returns Options that apply the target value immediately.
func Instant() Options {
	return Options{}
}

// Delayed returns a copy of the Options with the delay given.
func (opts Options) Delayed(delay float32) Options {
	opts.Delay = delay
	return opts
}

// Eased returns a copy of the Options with the easing function given.
func (opts Options) Eased(fn ease.TweenFunc) Options {
	opts.Ease = fn
	return opts
}

// Repeating returns a copy of the Options repeating the given number of times (-1 is forever), optionally yoyoing.
func (opts Options) Repeating(times int, yoyo bool) Options {
	opts.Repeat = times
	opts.Yoyo = yoyo
	return opts
}

type entry struct {
	prop   Property
	target float32
	opts   Options
	call   func()

	delay   float32
	started bool
	from    float32
	to      float32
	cycle   int
	tween   *gween.Tween

	task *Task
	dead bool
}

// Timeline runs tweens and delayed calls. It isn't safe for concurrent use; advance it from the frame loop.
type Timeline struct {
	entries []*entry
	byPath  map[string]*entry
}

// NewTimeline returns a new, empty Timeline.
func NewTimeline() *Timeline {
	return &Timeline{byPath: map[string]*entry{}}
}

// To tweens the property from its value (read once the delay elapses) to the target. Any tween already
// scheduled for the same path is superseded. A tween with neither duration nor delay is applied immediately.
func (tl *Timeline) To(prop Property, target float32, opts Options) *Task {

	tl.Kill(prop.Path)

	e := &entry{
		prop:   prop,
		target: target,
		opts:   opts,
		delay:  opts.Delay,
		task:   newTask(),
	}

	if e.opts.Ease == nil {
		e.opts.Ease = ease.OutQuad
	}

	if opts.Delay <= 0 && opts.Duration <= 0 {
		prop.Set(target)
		e.task.complete()
		return e.task
	}

	tl.entries = append(tl.entries, e)
	tl.byPath[prop.Path] = e

	return e.task

}

// After calls fn once the delay (in seconds) elapses.
func (tl *Timeline) After(delay float32, fn func()) *Task {
	e := &entry{
		call:  fn,
		delay: delay,
		task:  newTask(),
	}
	tl.entries = append(tl.entries, e)
	return e.task
}

// Kill stops the tween scheduled for the path, if any, leaving the property at its current value.
// The tween's Task is superseded.
func (tl *Timeline) Kill(path string) {
	if e, ok := tl.byPath[path]; ok {
		delete(tl.byPath, path)
		e.dead = true
		e.task.supersede()
	}
}

// Active returns true if a tween is scheduled (pending or running) for the path.
func (tl *Timeline) Active(path string) bool {
	_, ok := tl.byPath[path]
	return ok
}

// Len returns the number of scheduled tweens and delayed calls.
func (tl *Timeline) Len() int {
	count := 0
	for _, e := range tl.entries {
		if !e.dead {
			count++
		}
	}
	return count
}

// Update advances the Timeline by dt seconds. Tweens and calls scheduled during the Update start on the next one.
func (tl *Timeline) Update(dt float32) {

	count := len(tl.entries)

	for i := 0; i < count; i++ {
		e := tl.entries[i]
		if !e.dead {
			tl.step(e, dt)
		}
	}

	live := tl.entries[:0]
	for _, e := range tl.entries {
		if !e.dead {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(tl.entries); i++ {
		tl.entries[i] = nil
	}
	tl.entries = live

}

func (tl *Timeline) step(e *entry, dt float32) {

	if e.delay > 0 {
		e.delay -= dt
		if e.delay > 0 {
			return
		}
		dt = -e.delay
		e.delay = 0
	}

	if e.call != nil {
		e.dead = true
		e.call()
		e.task.complete()
		return
	}

	if !e.started {
		e.started = true
		e.from = e.prop.Get()
		e.to = e.target
		if e.opts.Duration <= 0 {
			e.prop.Set(e.target)
			tl.finish(e)
			return
		}
		e.tween = gween.New(e.from, e.to, e.opts.Duration, e.opts.Ease)
	}

	value, finished := e.tween.Update(dt)
	e.prop.Set(value)

	if !finished {
		return
	}

	if e.opts.Repeat < 0 || e.cycle < e.opts.Repeat {
		e.cycle++
		if e.opts.Yoyo {
			e.from, e.to = e.to, e.from
		}
		e.tween = gween.New(e.from, e.to, e.opts.Duration, e.opts.Ease)
		return
	}

	tl.finish(e)

}

func (tl *Timeline) finish(e *entry) {
	e.dead = true
	if tl.byPath[e.prop.Path] == e {
		delete(tl.byPath, e.prop.Path)
	}
	e.task.complete()
}
