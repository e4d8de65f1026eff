package ports_test

import (
	"testing"

	domainauth "github.com/brazil-data-cube/hubauth/internal/domain/auth"
	mocks "github.com/brazil-data-cube/hubauth/internal/mocks/auth"
	"github.com/brazil-data-cube/hubauth/internal/ports"
)

// This test only verifies that implementations conform to the ports at
// compile time.
func TestImplementationsConformToPorts(t *testing.T) {
	t.Helper()

	var _ ports.OAuthFlow = (*mocks.MockOAuthFlow)(nil)
	var _ ports.RolePolicy = mocks.StaticPolicy{}
	var _ ports.RolePolicy = domainauth.Policy{}
}
