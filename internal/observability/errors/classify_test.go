package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	domainauth "github.com/brazil-data-cube/hubauth/internal/domain/auth"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "upstream status",
			err:  &domainauth.UpstreamError{Op: "token", StatusCode: 401},
			want: "upstream_token_status_401",
		},
		{
			name: "upstream transport",
			err:  &domainauth.UpstreamError{Op: "userinfo", Err: goerrors.New("dial tcp: refused")},
			want: "upstream_userinfo_transport",
		},
		{
			name: "wrapped upstream still classified",
			err:  fmt.Errorf("exchange authorization code: %w", &domainauth.UpstreamError{Op: "token", StatusCode: 500}),
			want: "upstream_token_status_500",
		},
		{
			name: "plain error falls back to type name",
			err:  goerrors.New("boom"),
			want: "errors_errorstring",
		},
		{
			name: "wrapped plain error uses innermost type",
			err:  fmt.Errorf("outer: %w", goerrors.New("inner")),
			want: "errors_errorstring",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Fatalf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
