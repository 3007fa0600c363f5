package secp256k1

import "runtime"

// ZeroizeBytes overwrites the provided slice with zeros and prevents compiler
// dead store elimination using runtime.KeepAlive.
//
// This follows the pattern recommended in golang/go#33325. It cannot
// guarantee complete memory sanitization given Go's garbage collector and
// copies made by downstream crypto code, but it is the accepted practice for
// sensitive buffers in the Go ecosystem.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}
