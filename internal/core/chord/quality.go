package chord

// Quality is the harmonic type suffix of a chord.
type Quality string

const (
	QualityMaj     Quality = "maj"
	QualityMin     Quality = "min"
	QualityDom7    Quality = "dom7"
	QualityMaj7    Quality = "maj7"
	QualityMin7    Quality = "min7"
	QualityDim     Quality = "dim"
	QualityDim7    Quality = "dim7"
	QualityHalfDim Quality = "half_dim"
	QualityAug     Quality = "aug"
	QualityDom9    Quality = "dom9"
	QualityMaj9    Quality = "maj9"
	QualityMin9    Quality = "min9"
	QualityFlat9   Quality = "flat9"
	QualitySharp9  Quality = "sharp9"
	QualityMaj11   Quality = "maj11"
	QualitySharp11 Quality = "sharp11"
	QualityDom13   Quality = "dom13"
	QualityMaj13   Quality = "maj13"
	QualityFlat13  Quality = "flat13"
	QualitySus     Quality = "sus"
	QualitySus4    Quality = "sus4"
	QualitySus2    Quality = "sus2"
	QualityMaj6    Quality = "maj6"
	QualityMin6    Quality = "min6"
)

type qualityInfo struct {
	symbol    string
	intervals []int // semitones above the root
}

// qualityTable is the formatting side of the grammar. Every quality has a
// symbol, including the ones the parser has no input token for.
var qualityTable = map[Quality]qualityInfo{
	QualityMaj:     {"", []int{0, 4, 7}},
	QualityMin:     {"-", []int{0, 3, 7}},
	QualityDom7:    {"7", []int{0, 4, 7, 10}},
	QualityMaj7:    {"^", []int{0, 4, 7, 11}},
	QualityMin7:    {"-7", []int{0, 3, 7, 10}},
	QualityDim:     {"o", []int{0, 3, 6}},
	QualityDim7:    {"o7", []int{0, 3, 6, 9}},
	QualityHalfDim: {"m7b5", []int{0, 3, 6, 10}},
	QualityAug:     {"+", []int{0, 4, 8}},
	QualityDom9:    {"9", []int{0, 4, 7, 10, 14}},
	QualityMaj9:    {"^9", []int{0, 4, 7, 11, 14}},
	QualityMin9:    {"-9", []int{0, 3, 7, 10, 14}},
	QualityFlat9:   {"b9", []int{0, 4, 7, 10, 13}},
	QualitySharp9:  {"#9", []int{0, 4, 7, 10, 15}},
	QualityMaj11:   {"^11", []int{0, 4, 7, 11, 14, 17}},
	QualitySharp11: {"#11", []int{0, 4, 7, 10, 18}},
	QualityDom13:   {"13", []int{0, 4, 7, 10, 14, 21}},
	QualityMaj13:   {"^13", []int{0, 4, 7, 11, 14, 21}},
	QualityFlat13:  {"b13", []int{0, 4, 7, 10, 20}},
	QualitySus:     {"sus", []int{0, 5, 7}},
	QualitySus4:    {"sus4", []int{0, 5, 7}},
	QualitySus2:    {"sus2", []int{0, 2, 7}},
	QualityMaj6:    {"6", []int{0, 4, 7, 9}},
	QualityMin6:    {"m6", []int{0, 3, 7, 9}},
}

// parseTokens is the input side of the grammar. Qualities missing here can
// be stored and formatted but not typed.
var parseTokens = map[string]Quality{
	"":     QualityMaj,
	"-":    QualityMin,
	"m":    QualityMin,
	"7":    QualityDom7,
	"-7":   QualityMin7,
	"m7":   QualityMin7,
	"^":    QualityMaj7,
	"^7":   QualityMaj7,
	"M7":   QualityMaj7,
	"dim":  QualityDim,
	"o":    QualityDim,
	"dim7": QualityDim7,
	"o7":   QualityDim7,
	"hd":   QualityHalfDim,
	"m7b5": QualityHalfDim, // the HalfDim spelling, so formatted chords parse back
	"6":    QualityMaj6,
	"m6":   QualityMin6,
	"-6":   QualityMin6,
}

// Qualities returns every quality in declaration order.
func Qualities() []Quality {
	return []Quality{
		QualityMaj, QualityMin, QualityDom7, QualityMaj7, QualityMin7,
		QualityDim, QualityDim7, QualityHalfDim, QualityAug,
		QualityDom9, QualityMaj9, QualityMin9, QualityFlat9, QualitySharp9,
		QualityMaj11, QualitySharp11, QualityDom13, QualityMaj13, QualityFlat13,
		QualitySus, QualitySus4, QualitySus2, QualityMaj6, QualityMin6,
	}
}

// LookupQuality resolves a quality token exactly as typed.
func LookupQuality(token string) (Quality, bool) {
	q, ok := parseTokens[token]
	return q, ok
}

// Parseable reports whether the parser has an input token for q.
func (q Quality) Parseable() bool {
	for _, v := range parseTokens {
		if v == q {
			return true
		}
	}
	return false
}

// Valid reports whether q is a member of the quality enumeration.
func (q Quality) Valid() bool {
	_, ok := qualityTable[q]
	return ok
}

// Symbol returns the abbreviation used when formatting.
func (q Quality) Symbol() string {
	return qualityTable[q].symbol
}

// Intervals returns the chord tones as semitone offsets from the root.
func (q Quality) Intervals() []int {
	iv := qualityTable[q].intervals
	out := make([]int, len(iv))
	copy(out, iv)
	return out
}
