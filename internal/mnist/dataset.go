package mnist

import (
	"fmt"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/kunimune0893/ML-examples/internal/idx"
)

// DefaultCacheTTL is how long a Dataset keeps a record it has read.
const DefaultCacheTTL = 10 * time.Minute

// DatasetOptions configures Open.
type DatasetOptions struct {
	Options
	CacheTTL time.Duration // Zero means DefaultCacheTTL
}

// Dataset gives random access to the records of one set, caching records it
// has already read. It holds no open files between calls and is safe for
// concurrent use.
type Dataset struct {
	dir   string
	opts  Options
	image idx.ImageHeader
	label idx.LabelHeader
	cache *cache.Cache
}

// Open validates both container headers in dir and returns a Dataset over them.
func Open(dir string, opts DatasetOptions) (*Dataset, error) {
	p, err := openPair(dir, opts.Options)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Dataset{
		dir:   dir,
		opts:  opts.Options,
		image: p.image,
		label: p.label,
		cache: cache.New(ttl, 2*ttl),
	}, nil
}

// Len returns the number of records declared by both headers.
func (d *Dataset) Len() int {
	return int(min(d.image.Count, d.label.Count))
}

// Rows returns the image height.
func (d *Dataset) Rows() int { return int(d.image.Rows) }

// Cols returns the image width.
func (d *Dataset) Cols() int { return int(d.image.Cols) }

// ImageHeader returns the decoded image container header.
func (d *Dataset) ImageHeader() idx.ImageHeader { return d.image }

// LabelHeader returns the decoded label container header.
func (d *Dataset) LabelHeader() idx.LabelHeader { return d.label }

// Cached returns the number of records currently cached.
func (d *Dataset) Cached() int {
	return d.cache.ItemCount()
}

// Sample returns the record at index i.
func (d *Dataset) Sample(i int) (Sample, error) {
	samples, err := d.Range(i, 1)
	if err != nil {
		return Sample{}, err
	}
	return samples[0], nil
}

// Range returns count records starting at start. Records are read from disk
// only when at least one of them is not cached.
func (d *Dataset) Range(start, count int) ([]Sample, error) {
	if start < 0 || count < 0 {
		return nil, invalidArgument(fmt.Sprintf("start=%d, count=%d (negative values not allowed)", start, count))
	}

	if !d.opts.SkipRangeCheck {
		if err := checkRange(d.dir, start, count, int64(d.Len())); err != nil {
			return nil, err
		}
	}

	out := make([]Sample, 0, min(count, d.Len()))
	for i := 0; i < count; i++ {
		v, ok := d.cache.Get(strconv.Itoa(start + i))
		if !ok {
			break
		}
		out = append(out, v.(Sample).Clone())
	}
	if len(out) == count {
		return out, nil
	}

	samples, err := LoadWithOptions(d.dir, start, count, d.opts)
	if err != nil {
		return nil, err
	}
	for i, s := range samples {
		d.cache.Set(strconv.Itoa(start+i), s.Clone(), cache.DefaultExpiration)
	}
	return samples, nil
}

// Flush drops every cached record.
func (d *Dataset) Flush() {
	d.cache.Flush()
}
