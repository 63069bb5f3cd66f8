package common

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
	ColorWarning = 0xFEE75C // Yellow
	ColorInfo    = 0x3498DB // Blue
)

// Embed constants
const (
	MaxEmbedFields     = 25
	MaxEmbeds          = 10
	MaxEmbedChars      = 6000 // across every embed in one message
	MaxFieldNameChars  = 256
	MaxFieldValueChars = 1024
)
