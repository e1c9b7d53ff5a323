package palette

// macTones is the MAC NC complexion range, lightest first, with the lipstick
// shades recommended for each complexion.
var macTones = []Tone{
	{ID: "NC10", RGB: RGB{255, 224, 198}, Products: []string{"Angel", "Creme Cup", "Snob"}},
	{ID: "NC15", RGB: RGB{255, 218, 185}, Products: []string{"Brave", "Twig", "Mehr"}},
	{ID: "NC20", RGB: RGB{255, 205, 170}, Products: []string{"Velvet Teddy", "Mehr", "Mocha"}},
	{ID: "NC25", RGB: RGB{255, 190, 155}, Products: []string{"Taupe", "Whirl", "Mocha"}},
	{ID: "NC30", RGB: RGB{230, 170, 140}, Products: []string{"Whirl", "Mocha", "Chili"}},
	{ID: "NC35", RGB: RGB{210, 150, 120}, Products: []string{"Chili", "Marrakesh", "Brick-O-La"}},
	{ID: "NC40", RGB: RGB{190, 130, 100}, Products: []string{"Chili", "Russian Red", "Marrakesh"}},
	{ID: "NC42", RGB: RGB{170, 110, 80}, Products: []string{"Del Rio", "Sin", "Diva"}},
	{ID: "NC44", RGB: RGB{150, 90, 60}, Products: []string{"Diva", "Sin", "Media"}},
	{ID: "NC45", RGB: RGB{130, 70, 50}, Products: []string{"Media", "Ruby Woo", "Heroine"}},
	{ID: "NC50", RGB: RGB{110, 50, 30}, Products: []string{"Media", "Heroine", "Rebel"}},
	{ID: "NC55", RGB: RGB{90, 30, 10}, Products: []string{"Smoked Purple", "Diva", "Ruby Woo"}},
}

var defaultPalette = mustNew(macTones)

// Default returns the process-wide MAC complexion palette.
func Default() *Palette {
	return defaultPalette
}

func mustNew(tones []Tone) *Palette {
	p, err := New(tones)
	if err != nil {
		panic("invalid built-in palette: " + err.Error())
	}
	return p
}
