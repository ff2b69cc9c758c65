package opts

// Compression is the zlib compression level (0-9) requested for outgoing
// packets. Absence of a level on Opts means no compression is requested.
type Compression uint8

const (
	// CompressionFast trades ratio for speed.
	CompressionFast Compression = 1

	// CompressionDefault is the zlib default level.
	CompressionDefault Compression = 6

	// CompressionBest trades speed for ratio.
	CompressionBest Compression = 9
)

// Level returns the numeric level.
func (c Compression) Level() uint8 { return uint8(c) }

// parseCompression applies the URL grammar for the compression parameter:
// fast, on, true, best, or a single digit 0-9.
func parseCompression(value string) (Compression, bool) {
	switch value {
	case "fast":
		return CompressionFast, true
	case "on", "true":
		return CompressionDefault, true
	case "best":
		return CompressionBest, true
	}
	if len(value) == 1 && value[0] >= '0' && value[0] <= '9' {
		return Compression(value[0] - '0'), true
	}
	return 0, false
}
