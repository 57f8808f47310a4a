package crossword

import "fmt"

// charSet efficiently represents a set of letters a cell may take.
type charSet struct {
	available []bool
	min       rune
	count     int
}

func newCharSet() *charSet {
	return &charSet{
		available: make([]bool, 'z'-'a'+1),
		min:       'a',
	}
}

// add puts a letter in the set.
func (c *charSet) add(r rune) error {
	if r < c.min || r > c.min+rune(len(c.available)-1) {
		return fmt.Errorf("letter %c is out of range", r)
	}

	if c.available[r-c.min] {
		return nil
	}

	c.count++
	c.available[r-c.min] = true
	return nil
}

// contains checks if a letter is in the set.
func (c *charSet) contains(r rune) bool {
	return c.available[r-c.min]
}

// isFull checks if the set holds every letter.
func (c *charSet) isFull() bool {
	return c.count == len(c.available)
}

// count is the number of letters in the set.
func (c *charSet) size() int {
	return c.count
}

// intersect removes letters not present in other.
func (c *charSet) intersect(other *charSet) {
	for i, a := range c.available {
		if a && !other.available[i] {
			c.available[i] = false
			c.count--
		}
	}
}

// isEmpty checks if the set holds no letters.
func (c *charSet) isEmpty() bool {
	return c.count == 0
}
