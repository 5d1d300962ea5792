package analysis

import (
	"strings"
	"testing"

	"github.com/jacksonferrigno/dxter/internal/domain/knowledge"
	"github.com/jacksonferrigno/dxter/internal/domain/respond"
)

func TestIsTreatmentQuestion(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"how do I treat it", true},
		{"what is the treatment", true},
		{"How to treat low hemoglobin?", true},
		{"what is hemoglobin", false},
		{"my platelets are low", false},
	}
	for _, tt := range tests {
		if got := IsTreatmentQuestion(tt.text); got != tt.want {
			t.Errorf("IsTreatmentQuestion(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestResolveTreatmentUtteranceOverridesContext(t *testing.T) {
	base := knowledge.Default()
	answer, res := ResolveTreatment(base, "what about treatment for high?", knowledge.Hemoglobin, knowledge.StatusLow)
	if res == nil {
		t.Fatal("expected a resolution")
	}
	if res.Component != knowledge.Hemoglobin {
		t.Errorf("component = %s, want hemoglobin retained from context", res.Component)
	}
	if res.Status != knowledge.StatusHigh {
		t.Errorf("status = %s, want high from utterance", res.Status)
	}
	if !strings.Contains(answer, "high hemoglobin") {
		t.Errorf("answer should name high hemoglobin\n%s", answer)
	}
}

func TestResolveTreatmentLowWinsWhenBothTokensPresent(t *testing.T) {
	_, res := ResolveTreatment(knowledge.Default(), "treatment when low or high hemoglobin", "", "")
	if res == nil {
		t.Fatal("expected a resolution")
	}
	if res.Status != knowledge.StatusLow {
		t.Errorf("status = %s, want low (checked first)", res.Status)
	}
}

func TestResolveTreatmentFallsBackToContext(t *testing.T) {
	answer, res := ResolveTreatment(knowledge.Default(), "how do I treat it", knowledge.Hemoglobin, knowledge.StatusLow)
	if res == nil {
		t.Fatal("expected a resolution from context")
	}
	if res.Component != knowledge.Hemoglobin || res.Status != knowledge.StatusLow {
		t.Errorf("resolution = %+v, want hemoglobin/low", res)
	}
	if !strings.Contains(answer, "• Iron supplements") {
		t.Errorf("answer missing low-hemoglobin recommendations\n%s", answer)
	}
}

func TestResolveTreatmentEmptyContextClarifies(t *testing.T) {
	answer, res := ResolveTreatment(knowledge.Default(), "how do I treat it", "", "")
	if res != nil {
		t.Fatalf("expected no resolution, got %+v", res)
	}
	if answer != respond.TreatmentClarification {
		t.Errorf("answer = %q, want clarification prompt", answer)
	}
}

func TestResolveTreatmentComponentWithoutStatusClarifies(t *testing.T) {
	answer, res := ResolveTreatment(knowledge.Default(), "treatment for hemoglobin", "", "")
	if res != nil {
		t.Fatalf("expected no resolution, got %+v", res)
	}
	if answer != respond.TreatmentClarification {
		t.Errorf("answer = %q, want clarification prompt", answer)
	}
}
