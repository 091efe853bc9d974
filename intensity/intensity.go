// Package intensity implements the Big Ear receiver's intensity notation.
//
// Each 12-second integration window was printed as one character:
// blank for 0, digits 1-9, then letters A-Z for 10-35. The sequence
// 6EQUJ5 therefore reads 6, 14, 26, 30, 19, 5.
package intensity

import (
	"fmt"
	"unicode"
)

const (
	// Alphabet lists the intensity characters; a character's index is its
	// intensity.
	Alphabet = " 123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	Signal     = "6EQUJ5"
	Annotation = "Wow!"

	// HydrogenLineMHz is the neutral hydrogen emission line the receiver
	// was tuned near.
	HydrogenLineMHz = 1420.4056

	RightAscension = "19h 25m 31s"
	Declination    = "-27° 03'"

	// SampleSeconds is one integration window; a point source crossed the
	// beam in ObservationWindowSeconds.
	SampleSeconds            = 12
	ObservationWindowSeconds = 72

	// Levels is the number of distinct intensities.
	Levels = len(Alphabet)
)

// Reading is one decoded intensity sample.
type Reading struct {
	Position    int    `json:"position"`
	Char        string `json:"char"`
	Intensity   int    `json:"intensity"`
	Description string `json:"description"`
	Sigma       string `json:"sigma"`
	Window      string `json:"window"`
}

// Mapping records how Encode turned one input character into an
// intensity character.
type Mapping struct {
	Original  string `json:"original"`
	Ordinal   int    `json:"ordinal"`
	Intensity int    `json:"intensity"`
	Encoded   string `json:"encoded"`
}

// CharToIntensity returns c's intensity, or -1 if c is not an intensity
// character. Letters are case-insensitive.
func CharToIntensity(c rune) int {
	c = unicode.ToUpper(c)
	for i, a := range Alphabet {
		if a == c {
			return i
		}
	}
	return -1
}

// IntensityToChar returns the character for intensity, or '?' when it is
// out of range.
func IntensityToChar(intensity int) rune {
	if intensity < 0 || intensity >= Levels {
		return '?'
	}
	return rune(Alphabet[intensity])
}

// Describe names the strength of an intensity value.
func Describe(intensity int) string {
	switch {
	case intensity < 0:
		return "UNKNOWN"
	case intensity == 0:
		return "baseline noise"
	case intensity <= 3:
		return "weak"
	case intensity <= 6:
		return "moderate"
	case intensity <= 12:
		return "notable"
	case intensity <= 20:
		return "strong"
	case intensity <= 28:
		return "very strong"
	default:
		return "EXTRAORDINARY"
	}
}

// Decode reads an intensity sequence one window at a time.
func Decode(seq string) []Reading {
	var readings []Reading
	i := 0
	for _, c := range seq {
		c = unicode.ToUpper(c)
		n := CharToIntensity(c)
		sigma := "noise floor"
		if n > 0 {
			sigma = fmt.Sprintf("~%dσ above noise", n)
		}
		readings = append(readings, Reading{
			Position:    i,
			Char:        string(c),
			Intensity:   n,
			Description: Describe(n),
			Sigma:       sigma,
			Window:      fmt.Sprintf("%ds - %ds", i*SampleSeconds, (i+1)*SampleSeconds),
		})
		i++
	}
	return readings
}

// Encode maps each rune of text to the intensity character of its
// ordinal modulo Levels. It hides text in telescope-looking output; it
// is not reversible.
func Encode(text string) string {
	out := make([]rune, 0, len(text))
	for _, c := range text {
		out = append(out, IntensityToChar(int(c)%Levels))
	}
	return string(out)
}

// EncodeDetailed is Encode with the per-character working shown.
func EncodeDetailed(text string) []Mapping {
	var out []Mapping
	for _, c := range text {
		n := int(c) % Levels
		out = append(out, Mapping{
			Original:  string(c),
			Ordinal:   int(c),
			Intensity: n,
			Encoded:   string(IntensityToChar(n)),
		})
	}
	return out
}

// Peak returns the reading with the highest intensity, the first one on
// ties. ok is false for an empty slice.
func Peak(readings []Reading) (peak Reading, ok bool) {
	for i, r := range readings {
		if i == 0 || r.Intensity > peak.Intensity {
			peak = r
		}
	}
	return peak, len(readings) > 0
}
