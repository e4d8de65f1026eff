package errors

import (
	goerrors "errors"
	"reflect"
	"strconv"
	"strings"

	domainauth "github.com/brazil-data-cube/hubauth/internal/domain/auth"
)

// Classify returns a normalized error type name suitable for tagging
// metrics/logs. Upstream identity-provider failures are tagged with their
// HTTP status so dashboards can separate provider outages from client bugs;
// everything else is tagged by its innermost concrete type.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	var upstream *domainauth.UpstreamError
	if goerrors.As(err, &upstream) {
		if upstream.StatusCode == 0 {
			return "upstream_" + upstream.Op + "_transport"
		}
		return "upstream_" + upstream.Op + "_status_" + strconv.Itoa(upstream.StatusCode)
	}

	// Unwrap to the innermost error for better signal.
	for {
		unwrapped := goerrors.Unwrap(err)
		if unwrapped == nil {
			break
		}
		err = unwrapped
	}

	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}

	name := strings.ToLower(strings.ReplaceAll(t.String(), "*", ""))
	name = strings.ReplaceAll(name, ".", "_")
	if name == "" {
		return "unknown"
	}
	return name
}
