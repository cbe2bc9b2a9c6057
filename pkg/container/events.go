package container

// OnMaxSizeChanged registers a persistent listener invoked every time the
// container's maximum size changes. It returns an unsubscribe function.
func (c *Container) OnMaxSizeChanged(fn func(width, height float64)) func() {
	return c.addMaxSizeListener(fn, false)
}

// OnMaxSizeChangedOnce registers a one-shot listener. After its first
// invocation the listener is disabled rather than removed, so repeated
// events do not fire it again.
func (c *Container) OnMaxSizeChangedOnce(fn func(width, height float64)) func() {
	return c.addMaxSizeListener(fn, true)
}

func (c *Container) addMaxSizeListener(fn func(width, height float64), once bool) func() {
	if c.maxSizeListeners == nil {
		c.maxSizeListeners = make(map[int]*maxSizeListener)
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.maxSizeListeners[id] = &maxSizeListener{fn: fn, once: once}
	return func() {
		delete(c.maxSizeListeners, id)
	}
}

// SetMaxSize updates the container's maximum size. Listeners fire only when
// a value actually changes; size reactions run later on the event queue in
// real embeddings, so listeners must not assume they run during layout.
func (c *Container) SetMaxSize(width, height float64) {
	if c.maxWidth == width && c.maxHeight == height {
		return
	}
	c.maxWidth = width
	c.maxHeight = height
	for _, l := range c.maxSizeListeners {
		if l.disabled {
			continue
		}
		if l.once {
			l.disabled = true
		}
		l.fn(width, height)
	}
}

// MaxSize returns the current maximum width and height.
func (c *Container) MaxSize() (width, height float64) {
	return c.maxWidth, c.maxHeight
}

// OnDispose registers a function to run when the container is disposed.
// Disposers run in registration order, exactly once.
func (c *Container) OnDispose(fn func()) {
	c.disposers = append(c.disposers, fn)
}

// IsDisposed reports whether Dispose has run.
func (c *Container) IsDisposed() bool { return c.disposed }

// Dispose tears the container down: children first, then its own disposers.
// Calling Dispose again is a no-op.
func (c *Container) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true

	// Detach the children before cascading: each child's Dispose ends by
	// removing itself from its parent, which would compact the slice
	// mid-iteration and skip siblings.
	kids := c.children
	c.children = nil
	for _, child := range kids {
		child.parent = nil
		child.Dispose()
	}

	for _, fn := range c.disposers {
		fn()
	}
	c.disposers = nil
	c.maxSizeListeners = nil

	if c.parent != nil {
		c.parent.removeChild(c)
	}
}
