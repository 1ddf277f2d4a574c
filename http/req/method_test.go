package req_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rex/http/req"
)

func TestRequestEffectiveHTTPMethod(t *testing.T) {
	for _, tc := range []struct {
		name      string
		method    string
		target    string
		effective string
	}{
		{"Get", http.MethodGet, "/foo?param1=bar", http.MethodGet},
		{"Post", http.MethodPost, "/foo", http.MethodPost},
		{"Put", http.MethodPut, "/foo", http.MethodPut},
		{"Delete", http.MethodDelete, "/foo", http.MethodDelete},
		{"Patch", http.MethodPatch, "/foo", http.MethodPatch},
		{"Effective-Put", http.MethodPost, "/foo?_method=pUt", http.MethodPut},
		{"Effective-Delete", http.MethodPost, "/foo?_method=DeLeTe", http.MethodDelete},
		{"Unknown-Override", http.MethodPost, "/foo?_method=xyzt", http.MethodPost},
		{"Override-Not-Overridable", http.MethodPost, "/foo?_method=PATCH", http.MethodPost},
		{"Override-From-Get", http.MethodGet, "/foo?_method=delete", http.MethodDelete},
		{"Case-Insensitive-Key", http.MethodPost, "/foo?_METHOD=put", http.MethodPut},
		{"First-Override-Wins", http.MethodPost, "/foo?_method=delete&_method=put", http.MethodDelete},
		{"Empty-Override", http.MethodPost, "/foo?_method", http.MethodPost},
		{"Encoded-Override", http.MethodPost, "/foo?%5Fmethod=%50UT", http.MethodPut},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := req.New(tc.method, tc.target)

			// Act + Assert
			require.Equal(t, tc.method, r.HTTPMethod())
			require.Equal(t, tc.effective, r.EffectiveHTTPMethod())
		})
	}
}

func TestResolveMethod(t *testing.T) {
	require.Equal(t, http.MethodPut, req.ResolveMethod(http.MethodPost, "put"))
	require.Equal(t, http.MethodDelete, req.ResolveMethod(http.MethodPost, "DELETE"))
	require.Equal(t, http.MethodPost, req.ResolveMethod(http.MethodPost, ""))
	require.Equal(t, http.MethodPost, req.ResolveMethod(http.MethodPost, "get"))
	require.Equal(t, "CUSTOM", req.ResolveMethod("CUSTOM", "xyzt"))
}
