package utils

import "runtime"

// Stack returns a stack trace of the calling goroutine. skip is kept for
// call-site compatibility; the full trace is returned and the buffer grows
// until the whole trace fits.
func Stack(skip int) []byte {
	_ = skip
	buf := make([]byte, 1024)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) {
			return buf[:n]
		}
		buf = make([]byte, 2*len(buf))
	}
}
