package encode

type Option func(*encState)

// Separator is written between tokens when the sequence carries no
// shadow tokens at all. Sequences with shadows reproduce their own
// spacing, so the separator is ignored for them.
func Separator(sep string) Option {
	return func(es *encState) { es.sep = sep }
}

// Colors renders each token through the palette.
func Colors(c *ColorSet) Option {
	return func(es *encState) { es.colors = c }
}
