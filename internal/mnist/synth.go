package mnist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kunimune0893/ML-examples/internal/idx"
)

// SyntheticSize is the side length of the images produced by Synthetic.
const SyntheticSize = 28

// Synthetic generates n simple 28x28 patterns, one band per digit, labeled
// i%10. It is NOT realistic MNIST data; it exercises the pipeline when the
// real files are unavailable.
func Synthetic(n int) (images [][]byte, labels []byte) {
	images = make([][]byte, n)
	labels = make([]byte, n)
	for i := range images {
		digit := i % 10
		img := make([]byte, SyntheticSize*SyntheticSize)
		startRow := digit * 2
		for row := startRow; row < startRow+8 && row < SyntheticSize; row++ {
			for col := 5; col < 23; col++ {
				img[row*SyntheticSize+col] = 204
			}
		}
		images[i] = img
		labels[i] = byte(digit)
	}
	return images, labels
}

// WriteSet writes images and labels as the IDX pair of set in dir,
// creating dir if needed.
func WriteSet(dir string, set Set, rows, cols uint32, images [][]byte, labels []byte) error {
	if len(images) != len(labels) {
		return invalidArgument(fmt.Sprintf("%d images but %d labels", len(images), len(labels)))
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	imageName, labelName := set.FileNames()
	if err := writeFile(filepath.Join(dir, imageName), func(w *bufio.Writer) error {
		return idx.WriteImages(w, rows, cols, images)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, labelName), func(w *bufio.Writer) error {
		return idx.WriteLabels(w, labels)
	})
}

func writeFile(path string, write func(w *bufio.Writer) error) error {
	//nolint:gosec // G304: output path comes from the caller by design
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	w := bufio.NewWriter(file)
	if err := write(w); err != nil {
		_ = file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return file.Close()
}
