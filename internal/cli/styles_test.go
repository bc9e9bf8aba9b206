package cli

import (
	"strings"
	"testing"
)

func TestFormatters(t *testing.T) {
	tests := []struct {
		format func(string) string
		name   string
		icon   string
	}{
		{name: "success", format: FormatSuccess, icon: SuccessIcon},
		{name: "error", format: FormatError, icon: ErrorIcon},
		{name: "warning", format: FormatWarning, icon: WarningIcon},
		{name: "info", format: FormatInfo, icon: InfoIcon},
		{name: "title", format: FormatTitle, icon: SeedIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.format("Inserted 60 transactions")
			if !strings.Contains(got, tt.icon) {
				t.Errorf("%s output %q missing icon %q", tt.name, got, tt.icon)
			}
			if !strings.Contains(got, "Inserted 60 transactions") {
				t.Errorf("%s output %q missing message", tt.name, got)
			}
		})
	}
}

func TestRenderBox(t *testing.T) {
	got := RenderBox("Variable income", "Transactions: 180")
	if !strings.Contains(got, "Variable income") || !strings.Contains(got, "Transactions: 180") {
		t.Errorf("RenderBox() = %q, missing title or content", got)
	}
	if lines := strings.Split(got, "\n"); len(lines) < 4 {
		t.Errorf("RenderBox() produced %d lines, want a bordered box", len(lines))
	}
}
