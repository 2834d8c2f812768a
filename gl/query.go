// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gl

// GetString returns a static implementation-identification string.
// Unrecognized names latch invalid-enum and return "".
func (c *Context) GetString(name int) string {
	switch name {
	case glVendor:
		return "tinygl"
	case glRenderer:
		return "tinygl software rasterizer"
	case glVersion:
		return "1.5 tinygl"
	case glExtensions:
		return ""
	default:
		c.latch(ErrInvalidEnum)
		return ""
	}
}

// Flush and Finish are definitional no-ops: every call is already
// synchronous and there is no command queue to drain (spec.md §5).
func (c *Context) Flush()  {}
func (c *Context) Finish() {}
