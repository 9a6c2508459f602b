package nav

// Signal is the most recently requested destination, or absent when the user
// last chose the menu baseline.
type Signal struct {
	Key     ViewKey
	Present bool
}

// Controller owns the navigation signal the top-level menu writes to. It is
// the only writer; the form host reads the signal through Sync.
type Controller struct {
	signal Signal
}

// Select records a navigation choice. Choosing HOME clears the signal to
// absent; that is the only way back to the unforced baseline. Any other key
// sets the signal to that key.
func (c *Controller) Select(k ViewKey) {
	if k == KeyHome {
		c.signal = Signal{}
		return
	}
	c.signal = Signal{Key: k, Present: true}
}

// Signal returns the current navigation signal.
func (c *Controller) Signal() Signal {
	return c.signal
}
