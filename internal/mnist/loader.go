package mnist

import (
	"fmt"
	"io"
	"math"

	"github.com/kunimune0893/ML-examples/internal/idx"
)

// Load reads count records starting at record start from the test set in dir.
//
// The returned slice has exactly count elements and element 0 corresponds to
// start. See LoadWithOptions for the error behavior.
func Load(dir string, start, count int) ([]Sample, error) {
	return LoadWithOptions(dir, start, count, Options{})
}

// LoadOne reads the single record at index from the test set in dir.
func LoadOne(dir string, index int) (Sample, error) {
	samples, err := Load(dir, index, 1)
	if err != nil {
		return Sample{}, err
	}
	return samples[0], nil
}

// LoadWithOptions reads count records starting at record start.
//
// Failures:
//   - ErrFileNotFound: either container cannot be opened
//   - ErrInvalidFormat: wrong magic number or unreadable header
//   - ErrTruncatedRead: the range exceeds the declared record count, or a
//     record cannot be read in full
//   - ErrInvalidArgument: negative start or count
//
// No samples are returned on failure.
func LoadWithOptions(dir string, start, count int, opts Options) ([]Sample, error) {
	if start < 0 || count < 0 {
		return nil, invalidArgument(fmt.Sprintf("start=%d, count=%d (negative values not allowed)", start, count))
	}

	p, err := openPair(dir, opts)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	if !opts.SkipRangeCheck {
		if err := p.checkRange(start, count); err != nil {
			return nil, err
		}
	}

	size := p.image.ImageSize()
	if size > 0 && int64(start) > math.MaxInt64/int64(size) {
		return nil, truncatedRead(p.images.path, start, "record offset overflows", nil)
	}
	if err := p.images.skip(int64(start) * int64(size)); err != nil {
		return nil, truncatedRead(p.images.path, start, "seek failed", err)
	}
	if err := p.labels.skip(int64(start)); err != nil {
		return nil, truncatedRead(p.labels.path, start, "seek failed", err)
	}
	p.images.buffered()
	p.labels.buffered()

	// Declared counts bound the allocation; with SkipRangeCheck the files
	// may still hold more, so the slice grows as records arrive.
	samples := make([]Sample, 0, min(int64(count), p.records()))
	raw := make([]byte, size)
	var label [1]byte
	for i := 0; i < count; i++ {
		record := start + i
		if _, err := io.ReadFull(p.images, raw); err != nil {
			return nil, truncatedRead(p.images.path, record, fmt.Sprintf("want %d image bytes", size), err)
		}
		if _, err := io.ReadFull(p.labels, label[:]); err != nil {
			return nil, truncatedRead(p.labels.path, record, "want 1 label byte", err)
		}
		samples = append(samples, newSample(label[0], raw))
	}

	return samples, nil
}

// pair holds both open containers positioned right after their headers.
type pair struct {
	images *stream
	labels *stream
	image  idx.ImageHeader
	label  idx.LabelHeader
}

// openPair opens and validates both containers of opts.Set in dir.
func openPair(dir string, opts Options) (*pair, error) {
	imageName, labelName := opts.Set.FileNames()

	images, err := openStream(dir, imageName, opts.AllowGzip)
	if err != nil {
		return nil, err
	}
	labels, err := openStream(dir, labelName, opts.AllowGzip)
	if err != nil {
		_ = images.Close()
		return nil, err
	}
	p := &pair{images: images, labels: labels}

	if p.image, err = idx.ReadImageHeader(images); err != nil {
		_ = p.Close()
		return nil, invalidFormat(images.path, err)
	}
	if p.label, err = idx.ReadLabelHeader(labels); err != nil {
		_ = p.Close()
		return nil, invalidFormat(labels.path, err)
	}

	return p, nil
}

// records returns the number of records present in both containers
// according to their headers.
func (p *pair) records() int64 {
	return min(int64(p.image.Count), int64(p.label.Count))
}

func (p *pair) checkRange(start, count int) error {
	path := p.images.path
	if p.label.Count < p.image.Count {
		path = p.labels.path
	}
	return checkRange(path, start, count, p.records())
}

// checkRange fails when [start, start+count) does not fit in n records.
// start and count must not be negative.
func checkRange(path string, start, count int, n int64) error {
	// Compared without computing start+count, which may overflow.
	if int64(start) > n || int64(count) > n-int64(start) {
		return truncatedRead(path, -1,
			fmt.Sprintf("records [%d, %d+%d) exceed declared record count %d", start, start, count, n), nil)
	}
	return nil
}

// Close closes both containers.
func (p *pair) Close() error {
	errImages := p.images.Close()
	errLabels := p.labels.Close()
	if errImages != nil {
		return errImages
	}
	return errLabels
}
