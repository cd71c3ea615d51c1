package textnorm

// Token is a single normalized token together with its position in the
// normalized text. Index is the zero-based token position, Start/End the byte
// span within the normalized string.
type Token struct {
	Text  string
	Index int
	Start int
	End   int
}
