package glfw

// PollEvents processes pending events and returns immediately. Callbacks
// fire synchronously and reentrantly on the calling goroutine's thread,
// inside this call.
func PollEvents() {
	mustLoad().PollEvents()
}

// WaitEvents blocks the calling thread until at least one event arrives,
// then processes all pending events. Callbacks fire inside this call.
func WaitEvents() {
	mustLoad().WaitEvents()
}

// WaitEventsTimeout is WaitEvents bounded by a timeout in seconds. When the
// timeout elapses the call simply returns; it does not cancel any native
// work already in progress.
func WaitEventsTimeout(timeout float64) {
	mustLoad().WaitEventsTimeout(timeout)
}

// PostEmptyEvent wakes a thread blocked in WaitEvents from any thread.
func PostEmptyEvent() {
	mustLoad().PostEmptyEvent()
}
