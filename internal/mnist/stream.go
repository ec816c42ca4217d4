package mnist

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// stream is one read-only container file, plain or gzip-compressed.
type stream struct {
	path string
	file *os.File
	gz   *gzip.Reader
	r    io.Reader
}

// openStream opens dir/name, or dir/name.gz when allowGzip is set and the
// plain file does not exist.
func openStream(dir, name string, allowGzip bool) (*stream, error) {
	path := filepath.Join(dir, name)

	//nolint:gosec // G304: dataset path comes from the caller by design
	file, err := os.Open(path)
	if err == nil {
		return &stream{path: path, file: file, r: file}, nil
	}
	if !allowGzip || !errors.Is(err, fs.ErrNotExist) {
		return nil, fileNotFound(path, err)
	}

	gzPath := path + ".gz"
	//nolint:gosec // G304: dataset path comes from the caller by design
	file, gzErr := os.Open(gzPath)
	if gzErr != nil {
		// Report the plain name, it is the one the caller asked for.
		return nil, fileNotFound(path, err)
	}
	gz, gzErr := gzip.NewReader(file)
	if gzErr != nil {
		_ = file.Close()
		return nil, invalidFormat(gzPath, gzErr)
	}
	return &stream{path: gzPath, file: file, gz: gz, r: gz}, nil
}

// Read reads from the current position.
func (s *stream) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

// skip advances the stream by n bytes. Plain files seek; gzip streams
// discard decompressed bytes.
func (s *stream) skip(n int64) error {
	if n == 0 {
		return nil
	}
	if s.gz == nil {
		_, err := s.file.Seek(n, io.SeekCurrent)
		return err
	}
	if _, err := io.CopyN(io.Discard, s.gz, n); err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}

// buffered switches subsequent reads to a buffered reader. Call it after the
// last skip.
func (s *stream) buffered() {
	s.r = bufio.NewReaderSize(s.r, 64*1024)
}

// Close releases the underlying file.
func (s *stream) Close() error {
	if s.gz != nil {
		_ = s.gz.Close()
	}
	return s.file.Close()
}
