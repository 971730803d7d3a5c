package searchterm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		term     string
		expected Strategy
	}{
		{name: "CanonicalUUID", term: "8e0fd5b6-7b4c-4c5f-9f6e-2a1d3c4b5a69", expected: StrategyID},
		{name: "UppercaseUUID", term: "8E0FD5B6-7B4C-4C5F-9F6E-2A1D3C4B5A69", expected: StrategyID},
		{name: "UUIDWithoutHyphens", term: "8e0fd5b67b4c4c5f9f6e2a1d3c4b5a69", expected: StrategyName},
		{name: "Email", term: "user@example.com", expected: StrategyEmail},
		{name: "EmailWithPlus", term: "user+tag@example.com", expected: StrategyEmail},
		{name: "PlainName", term: "Jane Doe", expected: StrategyName},
		{name: "NameWithDigits", term: "agent007", expected: StrategyName},
		{name: "Integer", term: "12345", expected: StrategyNone},
		{name: "Float", term: "3.14", expected: StrategyNone},
		{name: "NegativeNumber", term: "-42", expected: StrategyNone},
		{name: "ScientificNotation", term: "1e3", expected: StrategyNone},
		{name: "Empty", term: "", expected: StrategyNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Classify(tc.term))
		})
	}
}

// The numeric check must run before the email and name paths: a numeric
// term is unresolvable, never a name.
func TestClassify_NumericNeverName(t *testing.T) {
	for _, term := range []string{"0", "007", "123456789012345678901234567890", "-0.5"} {
		require.Equal(t, StrategyNone, Classify(term), "term %q", term)
	}
}

func TestStrategy_String(t *testing.T) {
	require.Equal(t, "id", StrategyID.String())
	require.Equal(t, "email", StrategyEmail.String())
	require.Equal(t, "name", StrategyName.String())
	require.Equal(t, "none", StrategyNone.String())
}
