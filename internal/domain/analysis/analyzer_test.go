package analysis

import (
	"strings"
	"testing"

	"github.com/jacksonferrigno/dxter/internal/domain/knowledge"
)

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{"my hemoglobin is 9", 9, true},
		{"platelets at 450,000", 450000, true},
		{"hemoglobin is 12.5 today", 12.5, true},
		{"is my hemoglobin low", 0, false},
		{"wbc 4000 then 11000", 4000, true}, // first number wins
	}
	for _, tt := range tests {
		got, ok := ExtractNumber(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ExtractNumber(%q) = (%v, %v), want (%v, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAnalyzeNumericLowHemoglobin(t *testing.T) {
	base := knowledge.Default()
	res, ok := AnalyzeNumeric(base, "my hemoglobin is 9", 9)
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Component != knowledge.Hemoglobin {
		t.Errorf("component = %s, want hemoglobin", res.Component)
	}
	if res.Status != knowledge.StatusLow {
		t.Errorf("status = %s, want low", res.Status)
	}
	if !strings.Contains(res.Response, "LOW") {
		t.Errorf("response missing LOW marker\n%s", res.Response)
	}
	info, _ := base.Lookup(knowledge.Hemoglobin)
	if !strings.Contains(res.Response, info.Meanings[knowledge.StatusLow]) {
		t.Errorf("response missing low meaning\n%s", res.Response)
	}
}

func TestAnalyzeNumericHighPlatelets(t *testing.T) {
	res, ok := AnalyzeNumeric(knowledge.Default(), "platelets at 500000", 500000)
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Status != knowledge.StatusHigh {
		t.Errorf("status = %s, want high", res.Status)
	}
	if !strings.Contains(res.Response, "Your value: 500,000 is HIGH") {
		t.Errorf("response missing restatement\n%s", res.Response)
	}
}

func TestAnalyzeNumericBoundsAreNormal(t *testing.T) {
	base := knowledge.Default()
	for _, v := range []float64{12, 17} {
		res, ok := AnalyzeNumeric(base, "hemoglobin check", v)
		if !ok {
			t.Fatal("expected a match")
		}
		if res.Status != knowledge.StatusNormal {
			t.Errorf("hemoglobin %v classified %s, want normal", v, res.Status)
		}
	}
}

func TestAnalyzeNumericNoComponent(t *testing.T) {
	if _, ok := AnalyzeNumeric(knowledge.Default(), "my glucose is 90", 90); ok {
		t.Error("unknown component must not match")
	}
}
