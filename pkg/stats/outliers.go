package stats

// Quartiles returns Q1 and Q3 of the slice.
func Quartiles(x []float64) (q1, q3 float64) {
	return Percentile(x, 25), Percentile(x, 75)
}

// IQRBounds returns the Tukey fences Q1-1.5*IQR and Q3+1.5*IQR. Values
// outside [lo, hi] count as outliers.
func IQRBounds(x []float64) (lo, hi float64) {
	q1, q3 := Quartiles(x)
	iqr := q3 - q1
	return q1 - 1.5*iqr, q3 + 1.5*iqr
}
