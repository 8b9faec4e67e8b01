package product

// Carousel tracks which of n images is shown. With n == 0 it stays at 0 and
// every transition is a no-op.
type Carousel struct {
	index int
	n     int
}

// NewCarousel builds a carousel over n images starting at index, reduced
// modulo n.
func NewCarousel(n, index int) Carousel {
	if n <= 0 {
		return Carousel{}
	}
	return Carousel{index: ((index % n) + n) % n, n: n}
}

func (c Carousel) Index() int { return c.index }

func (c Carousel) Len() int { return c.n }

func (c Carousel) Next() Carousel {
	if c.n == 0 {
		return c
	}
	return Carousel{index: (c.index + 1) % c.n, n: c.n}
}

func (c Carousel) Prev() Carousel {
	if c.n == 0 {
		return c
	}
	return Carousel{index: (c.index - 1 + c.n) % c.n, n: c.n}
}
