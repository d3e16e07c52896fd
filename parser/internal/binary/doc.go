// Package binary reads fixed-width PLY values from a byte stream in a
// caller-chosen byte order.
package binary
