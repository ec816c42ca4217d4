// Package idx implements the IDX container format used by the MNIST distribution.
//
// An IDX file starts with a 4-byte magic number followed by one 4-byte size per
// dimension, all stored most-significant byte first, and then the raw element
// data. Two variants are supported:
//
//	Image file (idx3-ubyte):
//	  [4 bytes: Magic 0x00000803]
//	  [4 bytes: Count]
//	  [4 bytes: Rows]
//	  [4 bytes: Cols]
//	  [Count*Rows*Cols bytes: pixels, row-major]
//
//	Label file (idx1-ubyte):
//	  [4 bytes: Magic 0x00000801]
//	  [4 bytes: Count]
//	  [Count bytes: labels]
//
// Header fields are decoded with DecodeUint32, which does not depend on the
// host byte order.
package idx
