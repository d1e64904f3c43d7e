package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Detection is the outcome of guessing the language of free text.
type Detection struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Reliable   bool    `json:"reliable"`
	// Supported is false when the detected language has no table entry; Code
	// then holds the detector's ISO 639-3 code.
	Supported bool `json:"supported"`
}

// Detect guesses the language of text. It returns false for blank text or
// when the detector cannot name a language at all.
func Detect(text string) (Detection, bool) {
	if strings.TrimSpace(text) == "" {
		return Detection{}, false
	}

	return detection(whatlanggo.Detect(text))
}

// detection maps a detector result onto the standard table, preferring the
// ISO 639-1 code.
func detection(info whatlanggo.Info) (Detection, bool) {
	iso1 := info.Lang.Iso6391()
	iso3 := info.Lang.Iso6393()
	if iso1 == "" && iso3 == "" {
		return Detection{}, false
	}

	d := Detection{
		Confidence: info.Confidence,
		Reliable:   info.IsReliable(),
	}
	for _, candidate := range []string{iso1, iso3} {
		if code, ok := Canonicalize(candidate); ok {
			d.Code = code
			d.Name = Name(code)
			d.Supported = true
			return d, true
		}
	}

	d.Code = iso3
	if d.Code == "" {
		d.Code = iso1
	}
	d.Name = info.Lang.String()
	return d, true
}
