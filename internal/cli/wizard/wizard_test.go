package wizard

import "testing"

func TestKebabExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"pdf-tools", true},
		{"a", true},
		{"skill-2-parts", true},
		{"", false},
		{"Upper-Case", false},
		{"snake_case", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := kebabExpr.MatchString(tt.name); got != tt.want {
				t.Errorf("kebabExpr.MatchString(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewTheme(t *testing.T) {
	t.Parallel()

	if newTheme() == nil {
		t.Fatal("newTheme() = nil")
	}
}
