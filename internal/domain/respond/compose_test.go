package respond

import (
	"strings"
	"testing"

	"github.com/jacksonferrigno/dxter/internal/domain/knowledge"
)

func lookup(t *testing.T, c knowledge.Component) knowledge.ComponentInfo {
	t.Helper()
	info, ok := knowledge.Default().Lookup(c)
	if !ok {
		t.Fatalf("no record for %s", c)
	}
	return info
}

func TestNumericAnalysisLow(t *testing.T) {
	info := lookup(t, knowledge.Hemoglobin)
	got := NumericAnalysis(knowledge.Hemoglobin, info, knowledge.StatusLow, 9)

	for _, want := range []string{
		"**HEMOGLOBIN Analysis**",
		"Your value: 9 is LOW",
		"Normal range: 12-17 g/dL",
		info.Meanings[knowledge.StatusLow],
		"Common causes of low hemoglobin:",
		"• Iron deficiency",
		"Interested in:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("response missing %q\n%s", want, got)
		}
	}
}

func TestNumericAnalysisOmitsEmptyCauses(t *testing.T) {
	info := lookup(t, knowledge.Hemoglobin)
	got := NumericAnalysis(knowledge.Hemoglobin, info, knowledge.StatusNormal, 14)

	if strings.Contains(got, "Common causes") {
		t.Errorf("normal hemoglobin has no causes, section should be omitted\n%s", got)
	}
	if !strings.Contains(got, "Your value: 14 is NORMAL") {
		t.Errorf("missing normal restatement\n%s", got)
	}
}

func TestStatusDetailOmitsEmptySections(t *testing.T) {
	info := lookup(t, knowledge.WBC)
	got := StatusDetail(knowledge.WBC, info, knowledge.StatusNormal)

	if strings.Contains(got, "Common Causes:") || strings.Contains(got, "Common Symptoms:") {
		t.Errorf("empty lists must omit their section\n%s", got)
	}

	got = StatusDetail(knowledge.WBC, info, knowledge.StatusLow)
	if !strings.Contains(got, "Common Symptoms:\n• Frequent infections") {
		t.Errorf("low detail missing symptoms\n%s", got)
	}
	if !strings.Contains(got, "**Low WBC**") {
		t.Errorf("missing header\n%s", got)
	}
}

func TestTreatmentEmptyList(t *testing.T) {
	if got := Treatment(knowledge.Hemoglobin, knowledge.StatusNormal, nil); got != NoTreatment {
		t.Errorf("empty recommendations should yield the no-treatment message, got %q", got)
	}
}

func TestTreatmentRendersBullets(t *testing.T) {
	info := lookup(t, knowledge.Hemoglobin)
	got := Treatment(knowledge.Hemoglobin, knowledge.StatusLow, info.Treatment[knowledge.StatusLow])

	if !strings.HasPrefix(got, "Here are treatment recommendations for low hemoglobin:") {
		t.Errorf("unexpected header: %q", got)
	}
	if !strings.Contains(got, "• Iron supplements") {
		t.Errorf("missing first recommendation\n%s", got)
	}
}

func TestContextualMissingContext(t *testing.T) {
	info := lookup(t, knowledge.Hemoglobin)
	if got := Contextual("", info, ""); got != ContextClarification {
		t.Errorf("missing context must clarify, got %q", got)
	}
}

func TestRange(t *testing.T) {
	info := lookup(t, knowledge.Platelets)
	got := Range(knowledge.Platelets, info, knowledge.Range{Min: 150000, Max: 450000})

	if !strings.Contains(got, "• Below 150000: Considered low") {
		t.Errorf("missing low cutoff\n%s", got)
	}
	if !strings.Contains(got, "• Above 450000: Considered high") {
		t.Errorf("missing high cutoff\n%s", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{9, "9"},
		{500000, "500,000"},
		{450000.5, "450,000.5"},
		{-1234, "-1,234"},
		{12.5, "12.5"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOverviewListsAllComponents(t *testing.T) {
	got := Overview(knowledge.Default())
	for _, c := range knowledge.Default().Components() {
		if !strings.Contains(got, strings.ToUpper(string(c))) {
			t.Errorf("overview missing %s\n%s", c, got)
		}
	}
}
