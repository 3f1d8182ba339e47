package source

// NewText creates a source that yields one symbol per rune of the supplied
// text, each returned as a string
func NewText(text string) *Slice[string] {
	var symbols []string
	for _, ch := range text {
		symbols = append(symbols, string(ch))
	}
	return NewSlice(symbols...)
}
