// Package mnist loads labeled samples from MNIST image/label IDX file pairs.
//
// This package wraps the internal loader and exports a clean public API.
//
// Example usage:
//
//	import "github.com/kunimune0893/ML-examples/mnist"
//
//	// Read the first 100 test records from ./data
//	samples, err := mnist.Load("data", 0, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, s := range samples {
//	    fmt.Println(s.Label, len(s.Pixels))
//	}
package mnist

import (
	"image"

	"gonum.org/v1/gonum/mat"

	"github.com/kunimune0893/ML-examples/internal/mnist"
)

// Sample is one labeled image with pixel intensities normalized to [0, 1].
type Sample = mnist.Sample

// Set names one of the two MNIST splits.
type Set = mnist.Set

// Known sets.
const (
	SetTest  Set = mnist.SetTest
	SetTrain Set = mnist.SetTrain
)

// Options configures LoadWithOptions.
type Options = mnist.Options

// LoadError describes why a load failed.
type LoadError = mnist.LoadError

// Error kinds, matched with errors.Is.
var (
	ErrFileNotFound    = mnist.ErrFileNotFound
	ErrInvalidFormat   = mnist.ErrInvalidFormat
	ErrTruncatedRead   = mnist.ErrTruncatedRead
	ErrInvalidArgument = mnist.ErrInvalidArgument
)

// Load reads count records starting at record start from the test set in dir.
//
// Example:
//
//	samples, err := mnist.Load("data", 500, 10)
//	if errors.Is(err, mnist.ErrTruncatedRead) {
//	    // fewer than 510 records in the files
//	}
func Load(dir string, start, count int) ([]Sample, error) {
	return mnist.Load(dir, start, count)
}

// LoadOne reads the single record at index from the test set in dir.
func LoadOne(dir string, index int) (Sample, error) {
	return mnist.LoadOne(dir, index)
}

// LoadWithOptions reads count records starting at record start, with the set,
// range checking and gzip fallback controlled by opts.
func LoadWithOptions(dir string, start, count int, opts Options) ([]Sample, error) {
	return mnist.LoadWithOptions(dir, start, count, opts)
}

// Dataset gives cached random access to the records of one set.
type Dataset = mnist.Dataset

// DatasetOptions configures Open.
type DatasetOptions = mnist.DatasetOptions

// Open validates both container headers in dir and returns a Dataset over them.
//
// Example:
//
//	ds, err := mnist.Open("data", mnist.DatasetOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, err := ds.Sample(42)
func Open(dir string, opts DatasetOptions) (*Dataset, error) {
	return mnist.Open(dir, opts)
}

// Stats summarizes the intensities and labels of a batch of samples.
type Stats = mnist.Stats

// SyntheticSize is the side length of the images produced by Synthetic.
const SyntheticSize = mnist.SyntheticSize

// Matrix packs samples into a gonum dense matrix with one row per sample.
//
// Example:
//
//	samples, _ := mnist.Load("data", 0, 1000)
//	x, err := mnist.Matrix(samples) // 1000x784
//	y := mnist.Labels(samples)
func Matrix(samples []Sample) (*mat.Dense, error) {
	return mnist.Matrix(samples)
}

// Labels returns the labels of samples as ints, in order.
func Labels(samples []Sample) []int {
	return mnist.Labels(samples)
}

// Gray converts the pixels of s back to an 8-bit grayscale image.
func Gray(s Sample, rows, cols int) (*image.Gray, error) {
	return mnist.Gray(s, rows, cols)
}

// Summarize computes Stats over samples.
func Summarize(samples []Sample) Stats {
	return mnist.Summarize(samples)
}

// ASCII renders s as text, cols characters per line.
func ASCII(s Sample, cols int) string {
	return mnist.ASCII(s, cols)
}

// Synthetic generates n simple 28x28 patterns labeled i%10, for exercising a
// pipeline without the real files.
func Synthetic(n int) (images [][]byte, labels []byte) {
	return mnist.Synthetic(n)
}

// WriteSet writes images and labels as the IDX pair of set in dir.
//
// Example:
//
//	images, labels := mnist.Synthetic(100)
//	err := mnist.WriteSet("data", mnist.SetTest, mnist.SyntheticSize, mnist.SyntheticSize, images, labels)
func WriteSet(dir string, set Set, rows, cols uint32, images [][]byte, labels []byte) error {
	return mnist.WriteSet(dir, set, rows, cols, images, labels)
}
