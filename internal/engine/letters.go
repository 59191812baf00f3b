package engine

import "math/rand"

// Glyph pools for the letter grid. Every round draws the full alphabet plus
// one or two numeral glyphs, so numbers show up at low frequency.
var (
	arabicLetters = []string{
		"أ", "ب", "ت", "ث", "ج", "ح", "خ", "د", "ذ", "ر", "ز", "س", "ش",
		"ص", "ض", "ط", "ع", "غ", "ف", "ق", "ك", "ل", "م", "ن", "ه", "و", "ي",
	}
	arabicNumerals = []string{"٣", "٤"}
)

// NewLetterGrid returns a rows x cols matrix with random glyphs in every
// interior cell and empty border cells. The pool is shuffled up front and
// reshuffled whenever it runs out mid-fill, so duplicates are expected on
// grids larger than the alphabet.
func NewLetterGrid(rows, cols int) [][]string {
	numerals := make([]string, len(arabicNumerals))
	copy(numerals, arabicNumerals)
	rand.Shuffle(len(numerals), func(i, j int) {
		numerals[i], numerals[j] = numerals[j], numerals[i]
	})

	pool := make([]string, 0, len(arabicLetters)+len(numerals))
	pool = append(pool, arabicLetters...)
	pool = append(pool, numerals[:1+rand.Intn(len(numerals))]...)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	grid := NewEmptyBoard(rows, cols)
	idx := 0
	for row := 1; row < rows-1; row++ {
		for col := 1; col < cols-1; col++ {
			if idx >= len(pool) {
				rand.Shuffle(len(pool), func(i, j int) {
					pool[i], pool[j] = pool[j], pool[i]
				})
				idx = 0
			}
			grid[row][col] = pool[idx]
			idx++
		}
	}
	return grid
}
