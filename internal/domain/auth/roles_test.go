package auth

import (
	"reflect"
	"testing"
)

func TestFilterByApplication(t *testing.T) {
	tests := []struct {
		name        string
		application string
		roles       []string
		want        []string
	}{
		{
			name:        "nil roles",
			application: "jupyter",
			roles:       nil,
			want:        []string{},
		},
		{
			name:        "matching and non-matching applications",
			application: "jupyter",
			roles:       []string{"jupyter:user", "geoportal:admin", "jupyter:admin"},
			want:        []string{"jupyter:user", "jupyter:admin"},
		},
		{
			name:        "order preserved",
			application: "app",
			roles:       []string{"app:z", "app:a", "other:m", "app:k"},
			want:        []string{"app:z", "app:a", "app:k"},
		},
		{
			name:        "prefix match is exact and case-sensitive",
			application: "jupyter",
			roles:       []string{"Jupyter:user", "jupyterhub:user", " jupyter:user"},
			want:        []string{},
		},
		{
			name:        "tag without colon never matches",
			application: "jupyter",
			roles:       []string{"jupyter", "user"},
			want:        []string{},
		},
		{
			name:        "multi-colon tag matches on first segment",
			application: "jupyter",
			roles:       []string{"jupyter:admin:extra"},
			want:        []string{"jupyter:admin:extra"},
		},
		{
			name:        "full tags survive filtering",
			application: "jupyter",
			roles:       []string{"jupyter:user"},
			want:        []string{"jupyter:user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByApplication(tt.application, tt.roles)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterByApplication(%q, %v) = %v, want %v", tt.application, tt.roles, got, tt.want)
			}
		})
	}
}

func TestRoleName(t *testing.T) {
	tests := map[string]string{
		"jupyter:user":        "user",
		"jupyter:admin:extra": "admin", // trailing segments ignored
		"nocolon":             "",
		"jupyter:":            "",
	}

	for input, want := range tests {
		if got := roleName(input); got != want {
			t.Fatalf("roleName(%q) = %q, want %q", input, got, want)
		}
	}
}
