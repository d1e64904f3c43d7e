package language

import (
	"testing"

	"github.com/abadojack/whatlanggo"
	"github.com/google/go-cmp/cmp"
)

func TestDetectBlank(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		if d, ok := Detect(input); ok {
			t.Fatalf("Detect(%q) = %+v, want miss", input, d)
		}
	}
}

func TestDetectEnglish(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog and then runs back into the forest where nobody can find it."
	d, ok := Detect(text)
	if !ok {
		t.Fatal("expected detection")
	}
	if d.Code != "en" || d.Name != "English" || !d.Supported {
		t.Fatalf("Detect = %+v, want supported English", d)
	}
	if d.Confidence <= 0 {
		t.Fatalf("confidence = %v, want > 0", d.Confidence)
	}
}

func TestDetectionMapping(t *testing.T) {
	tests := []struct {
		name string
		info whatlanggo.Info
		want Detection
	}{
		{
			name: "iso 639-1 in table",
			info: whatlanggo.Info{Lang: whatlanggo.Jav, Confidence: 0.9},
			want: Detection{Code: "jv", Name: "Javanese", Confidence: 0.9, Reliable: true, Supported: true},
		},
		{
			name: "iso 639-1 outside table",
			info: whatlanggo.Info{Lang: whatlanggo.Aka, Confidence: 0.5},
			want: Detection{Code: "aka", Name: "Akan", Confidence: 0.5},
		},
		{
			name: "no iso 639-1 code",
			info: whatlanggo.Info{Lang: whatlanggo.Ilo, Confidence: 0.95},
			want: Detection{Code: "ilo", Name: "Ilocano", Confidence: 0.95, Reliable: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := detection(tt.info)
			if !ok {
				t.Fatal("expected detection")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("detection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
