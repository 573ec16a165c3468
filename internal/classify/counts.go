package classify

// Counts tallies outcomes for one marker set. The five buckets always sum to
// Tested.
type Counts struct {
	Tested        int
	NoError       int
	ErrorTolerant int
	WrongDB       int
	Novel         int
	Ambiguous     int
}

func (c *Counts) Add(o Outcome) {
	c.Tested++
	switch o {
	case NoError:
		c.NoError++
	case ErrorTolerant:
		c.ErrorTolerant++
	case WrongDB:
		c.WrongDB++
	case Novel:
		c.Novel++
	case Ambiguous:
		c.Ambiguous++
	}
}

// HadErrors is the number of samples with at least one substitution.
func (c Counts) HadErrors() int { return c.Tested - c.NoError }

// Sum re-adds the buckets; callers assert Sum() == Tested.
func (c Counts) Sum() int {
	return c.NoError + c.ErrorTolerant + c.WrongDB + c.Novel + c.Ambiguous
}
