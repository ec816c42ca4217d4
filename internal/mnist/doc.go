// Package mnist loads labeled samples from an MNIST image/label IDX file pair.
//
// A directory is expected to hold two files named after a Set, for the test set:
//
//	t10k-images-idx3-ubyte
//	t10k-labels-idx1-ubyte
//
// Load reads count consecutive records starting at a zero-based index and
// returns them with pixel intensities normalized to [0, 1]:
//
//	samples, err := mnist.Load("data", 0, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(samples[0].Label, len(samples[0].Pixels)) // 7 784
//
// Every call opens its own read-only handles and closes them before returning.
// Nothing is shared between calls, so Load is safe for concurrent use as long
// as the files are not being written.
//
// Failures are reported as *LoadError and match one of ErrFileNotFound,
// ErrInvalidFormat, ErrTruncatedRead or ErrInvalidArgument with errors.Is.
// No partial result is ever returned.
package mnist
