package impl

import "crypto/rand"

const (
	nonceLength   = 32
	nonceAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// newNonce returns a random alphanumeric identifier the device uses to dedupe
// redelivered notifications.
func newNonce() string {
	buf := make([]byte, nonceLength)
	// rand.Read never returns an error since Go 1.24.
	rand.Read(buf)

	out := make([]byte, nonceLength)
	for i, b := range buf {
		out[i] = nonceAlphabet[int(b)%len(nonceAlphabet)]
	}

	return string(out)
}
