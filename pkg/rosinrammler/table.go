package rosinrammler

// Sample is one (x, CDF(x)) pair.
type Sample struct {
	X   float64
	CDF float64
}

// CDFTable samples the CDF at n points x_i = step·i + offset, i = 0..n-1,
// with step = span/n.
func (d Distribution) CDFTable(span float64, n int, offset float64) []Sample {
	if n <= 0 {
		return nil
	}
	step := span / float64(n)
	samples := make([]Sample, n)
	for i := range samples {
		x := step*float64(i) + offset
		samples[i] = Sample{X: x, CDF: d.CDF(x)}
	}
	return samples
}
