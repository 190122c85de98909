package video

import (
	"reflect"
	"testing"
)

func TestQualityPresetNext(t *testing.T) {
	if QualityLow.Next() != QualityMedium || QualityMedium.Next() != QualityHigh || QualityHigh.Next() != QualityLow {
		t.Error("quality presets do not cycle low -> medium -> high -> low")
	}
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		in      string
		want    QualityPreset
		wantErr bool
	}{
		{"low", QualityLow, false},
		{"MEDIUM", QualityMedium, false},
		{"high", QualityHigh, false},
		{"", QualityHigh, false},
		{"ultra", QualityHigh, true},
	}
	for _, tt := range tests {
		got, err := ParseQuality(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseQuality(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseQuality(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestChafaBuildArgs(t *testing.T) {
	args := ChafaPresets[QualityLow].BuildArgs(80, 24)
	want := []string{
		"--format=symbols",
		"--size", "80x24",
		"--colors", "256",
		"-O", "9",
		"--work", "1",
		"--color-space", "rgb",
		"--dither", "none",
		"--color-extractor", "average",
		"-",
	}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("BuildArgs = %v", args)
	}
}

func TestChafaRendererCycleQuality(t *testing.T) {
	r := NewChafaRenderer(QualityHigh)
	if r.CycleQuality() != QualityLow || r.Quality() != QualityLow {
		t.Error("CycleQuality did not wrap to LOW")
	}
}
