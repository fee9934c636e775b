package omega

// Batch is one concrete realization of a Universe's coordinates: a row of
// uniform(0,1) draws per coordinate, each row Width entries long.
//
// Batches are read-only after creation. Evaluation never mutates them, which
// is what makes random-variable graphs pure and freely shareable.
type Batch struct {
	data  []float64
	rows  int
	width int
	shape []int
}

// Coordinates returns the number of rows, i.e. the coordinate count of the
// Universe at sampling time.
func (b *Batch) Coordinates() int {
	return b.rows
}

// Width returns the flattened trailing size of the batch: the number of
// draws per coordinate. Scalar batches have Width 1.
func (b *Batch) Width() int {
	return b.width
}

// Shape returns a copy of the trailing shape the batch was sampled for.
// Empty for scalar batches.
func (b *Batch) Shape() []int {
	return append([]int(nil), b.shape...)
}

// Row returns the draws for coordinate idx. The returned slice aliases the
// batch and must not be modified.
func (b *Batch) Row(idx int) ([]float64, error) {
	if idx < 0 || idx >= b.rows {
		return nil, NewCoordinateRangeError(idx, b.rows)
	}
	start := idx * b.width
	return b.data[start : start+b.width : start+b.width], nil
}
