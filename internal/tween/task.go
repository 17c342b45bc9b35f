package tween

// Task is the completion handle of a scheduled tween or delayed call. A Task ends exactly once: it either
// completes, or it is superseded (a later tween took over its property, or it was killed) and never completes.
type Task struct {
	ended      bool
	superseded bool
	watchers   []func(completed bool)
}

func newTask() *Task {
	return &Task{}
}

// Completed returns a Task that has already completed.
func Completed() *Task {
	task := newTask()
	task.complete()
	return task
}

// Dropped returns a Task that has already been superseded; its Then functions never run.
// It stands in for work that was skipped.
func Dropped() *Task {
	task := newTask()
	task.supersede()
	return task
}

// Done returns true if the Task completed.
func (task *Task) Done() bool {
	return task.ended && !task.superseded
}

// Superseded returns true if the Task ended without completing.
func (task *Task) Superseded() bool {
	return task.superseded
}

// Pending returns true if the Task has neither completed nor been superseded.
func (task *Task) Pending() bool {
	return !task.ended
}

// Then runs fn once the Task completes, or immediately if it already has. fn never runs if the Task is superseded.
// Then returns the Task itself, so calls can be chained.
func (task *Task) Then(fn func()) *Task {
	task.watch(func(completed bool) {
		if completed {
			fn()
		}
	})
	return task
}

// Next returns a Task that follows this one: once this Task completes, next is called and the returned Task
// completes when the Task next returns does. If either is superseded, so is the returned Task.
func (task *Task) Next(next func() *Task) *Task {
	follow := newTask()
	task.watch(func(completed bool) {
		if !completed {
			follow.supersede()
			return
		}
		next().watch(follow.end)
	})
	return follow
}

// All returns a Task that completes once every task given has completed. If any of them is superseded,
// the returned Task is superseded as well. All with no tasks returns a completed Task.
func All(tasks ...*Task) *Task {

	joined := newTask()
	remaining := len(tasks)

	if remaining == 0 {
		joined.complete()
		return joined
	}

	for _, t := range tasks {
		t.watch(func(completed bool) {
			if joined.ended {
				return
			}
			if !completed {
				joined.supersede()
				return
			}
			remaining--
			if remaining == 0 {
				joined.complete()
			}
		})
	}

	return joined

}

func (task *Task) watch(fn func(completed bool)) {
	if task.ended {
		fn(!task.superseded)
		return
	}
	task.watchers = append(task.watchers, fn)
}

func (task *Task) end(completed bool) {
	if task.ended {
		return
	}
	task.ended = true
	task.superseded = !completed
	watchers := task.watchers
	task.watchers = nil
	for _, w := range watchers {
		w(completed)
	}
}

func (task *Task) complete() {
	task.end(true)
}

func (task *Task) supersede() {
	task.end(false)
}
