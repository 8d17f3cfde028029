//go:build !amd64

package lane

func init() {
	// Non-amd64 architectures fall back to the 16-byte width for now.
	setScalarMode()
}
