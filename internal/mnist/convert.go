package mnist

import (
	"fmt"
	"image"
	"strings"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/mat"
)

// Matrix packs samples into a dense matrix with one row per sample.
func Matrix(samples []Sample) (*mat.Dense, error) {
	if len(samples) == 0 {
		return nil, invalidArgument("no samples")
	}
	cols := len(samples[0].Pixels)
	if cols == 0 {
		return nil, invalidArgument("samples have no pixels")
	}

	data := make([]float64, 0, len(samples)*cols)
	for i, s := range samples {
		if len(s.Pixels) != cols {
			return nil, invalidArgument(fmt.Sprintf("sample %d has %d pixels, want %d", i, len(s.Pixels), cols))
		}
		for _, p := range s.Pixels {
			data = append(data, float64(p))
		}
	}
	return mat.NewDense(len(samples), cols, data), nil
}

// Labels returns the labels of samples as ints, in order.
func Labels(samples []Sample) []int {
	labels := make([]int, len(samples))
	for i, s := range samples {
		labels[i] = int(s.Label)
	}
	return labels
}

// Gray converts the pixels of s back to an 8-bit grayscale image.
func Gray(s Sample, rows, cols int) (*image.Gray, error) {
	if rows < 0 || cols < 0 || rows*cols != len(s.Pixels) {
		return nil, invalidArgument(fmt.Sprintf("%dx%d does not match %d pixels", rows, cols, len(s.Pixels)))
	}
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.Pix[y*img.Stride+x] = toByte(s.Pixels[y*cols+x])
		}
	}
	return img, nil
}

func toByte(p float32) uint8 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 255
	default:
		return uint8(p*255 + 0.5)
	}
}

// Stats summarizes the intensities and labels of a batch of samples.
type Stats struct {
	Count  int           // Number of samples
	Min    float32       // Smallest pixel intensity
	Max    float32       // Largest pixel intensity
	Mean   float32       // Mean pixel intensity
	StdDev float32       // Standard deviation of pixel intensities
	Labels map[uint8]int // Samples per label
}

// Summarize computes Stats over samples.
//
// Mean and variance are accumulated with Welford's update, which stays
// accurate in float32 over a full 60,000-image set.
func Summarize(samples []Sample) Stats {
	st := Stats{Count: len(samples), Labels: make(map[uint8]int)}

	var n int
	var mean, m2 float32
	lo, hi := math32.Inf(1), math32.Inf(-1)
	for _, s := range samples {
		st.Labels[s.Label]++
		for _, p := range s.Pixels {
			lo = math32.Min(lo, p)
			hi = math32.Max(hi, p)
			n++
			delta := p - mean
			mean += delta / float32(n)
			m2 += delta * (p - mean)
		}
	}
	if n == 0 {
		return st
	}

	st.Min, st.Max = lo, hi
	st.Mean = mean
	st.StdDev = math32.Sqrt(math32.Max(m2/float32(n), 0))
	return st
}

// asciiRamp goes from blank to darkest ink.
const asciiRamp = " .:-=+*#%@"

// ASCII renders s as text, cols characters per line.
func ASCII(s Sample, cols int) string {
	if cols <= 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range s.Pixels {
		p = math32.Max(0, math32.Min(p, 1))
		level := int(math32.Floor(p*float32(len(asciiRamp)-1) + 0.5))
		b.WriteByte(asciiRamp[level])
		if (i+1)%cols == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
