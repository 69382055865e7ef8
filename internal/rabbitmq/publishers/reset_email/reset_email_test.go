package resetemail

import (
	"accounts/internal/core/domain/resettoken"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBody(t *testing.T) {
	baseURL := url.URL{Scheme: "https", Host: "example.com", Path: "/reset"}
	token := resettoken.Value("73d168b6-68b2-4a55-a22b-0b09e01ec1a3")

	cases := []struct {
		id       string
		template string
		expected string
	}{
		{
			id:       "no placeholder",
			template: "Click the link below.",
			expected: "Click the link below.",
		},
		{
			id:       "single placeholder",
			template: "Reset your password: ${{ token }}",
			expected: "Reset your password: https://example.com/reset/73d168b6-68b2-4a55-a22b-0b09e01ec1a3",
		},
		{
			id:       "no spaces around placeholder",
			template: "Link: ${{token}}",
			expected: "Link: https://example.com/reset/73d168b6-68b2-4a55-a22b-0b09e01ec1a3",
		},
		{
			id:       "multiple placeholders",
			template: "<a href=\"${{ token }}\">${{ token }}</a>",
			expected: "<a href=\"https://example.com/reset/73d168b6-68b2-4a55-a22b-0b09e01ec1a3\">" +
				"https://example.com/reset/73d168b6-68b2-4a55-a22b-0b09e01ec1a3</a>",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			actual := RenderBody(testcase.template, baseURL, token)
			assert.Equal(t, testcase.expected, actual)
		})
	}
}
