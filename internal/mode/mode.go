// Package mode owns the red-light display mode: a single persisted boolean
// mirrored into the UI theme.
package mode

import "strconv"

// Key is the settings key the mode flag persists under.
const Key = "redMode"

// Store is the persistence surface the controller writes the flag through.
// Implementations may fail; the controller never lets that reach the caller.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Controller holds the in-memory mode state and keeps the store in sync.
type Controller struct {
	store Store
	red   bool
}

// New reads the persisted flag and returns a controller initialized to the
// matching state. A nil store, an absent key or an unparseable value all
// fall back to normal mode; the feature is cosmetic and must never block
// startup.
func New(store Store) *Controller {
	c := &Controller{store: store}
	if store == nil {
		return c
	}
	if v, ok := store.Get(Key); ok {
		if red, err := strconv.ParseBool(v); err == nil {
			c.red = red
		}
	}
	return c
}

// Enabled reports whether red-light mode is active.
func (c *Controller) Enabled() bool { return c.red }

// Toggle flips the mode, persists the new value and returns it. A store
// write failure is swallowed: the visual toggle still happens, the
// preference just won't survive a restart.
func (c *Controller) Toggle() bool {
	c.red = !c.red
	if c.store != nil {
		_ = c.store.Set(Key, strconv.FormatBool(c.red))
	}
	return c.red
}

// Icon returns the indicator glyph for the current state.
func (c *Controller) Icon() string {
	if c.red {
		return "*"
	}
	return "o"
}

// Label returns the button text for the current state.
func (c *Controller) Label() string {
	if c.red {
		return "Red Light On"
	}
	return "Red Light Off"
}
