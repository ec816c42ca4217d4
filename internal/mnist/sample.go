package mnist

// Sample is one labeled image.
type Sample struct {
	Label  uint8     // Category id, 0-9 for standard MNIST data
	Pixels []float32 // Rows*Cols intensities in [0, 1], row-major
}

// newSample normalizes raw pixel bytes into a Sample.
func newSample(label byte, raw []byte) Sample {
	pixels := make([]float32, len(raw))
	for i, b := range raw {
		pixels[i] = float32(b) / 255.0
	}
	return Sample{Label: label, Pixels: pixels}
}

// Clone returns a deep copy of s.
func (s Sample) Clone() Sample {
	pixels := make([]float32, len(s.Pixels))
	copy(pixels, s.Pixels)
	return Sample{Label: s.Label, Pixels: pixels}
}

// Set names one of the two MNIST splits.
type Set string

// Known sets.
const (
	SetTest  Set = "t10k"  // 10,000 test records
	SetTrain Set = "train" // 60,000 training records
)

// FileNames returns the image and label file names of the set.
func (s Set) FileNames() (images, labels string) {
	if s == "" {
		s = SetTest
	}
	return string(s) + "-images-idx3-ubyte", string(s) + "-labels-idx1-ubyte"
}

// Options configures LoadWithOptions.
type Options struct {
	Set            Set  // File set to read; empty means SetTest
	SkipRangeCheck bool // Rely on short reads instead of the declared record counts
	AllowGzip      bool // Fall back to "<name>.gz" when a plain file is absent
}
