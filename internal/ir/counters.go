package ir

import "strconv"

// Counters generates fresh temporaries and label suffixes for one
// subroutine. It must be reset at every function entry: the
// zero value is already reset.
type Counters struct {
	temp  int
	ifN   int
	whileN int
}

// Reset zeroes every counter, to be called on entering a new subroutine.
func (c *Counters) Reset() {
	c.temp = 0
	c.ifN = 0
	c.whileN = 0
}

// NewTemp returns a fresh temporary name, `%1`, `%2`, ...
func (c *Counters) NewTemp() string {
	c.temp++
	return "%" + strconv.Itoa(c.temp)
}

// NewLabelIf returns a fresh if/else/endif label suffix.
func (c *Counters) NewLabelIf() string {
	c.ifN++
	return strconv.Itoa(c.ifN)
}

// NewLabelWhile returns a fresh while/endwhile label suffix.
func (c *Counters) NewLabelWhile() string {
	c.whileN++
	return strconv.Itoa(c.whileN)
}
