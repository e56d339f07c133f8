package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"passmeter/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Password upper case key",
			input:  []byte(`{"PASSWORD":"abc123"}`),
			output: []byte(`{"PASSWORD":"[MASKED]"}`),
		},
		{
			name:   "Password mixed case key",
			input:  []byte(`{"pAsSwOrD":"abc123"}`),
			output: []byte(`{"pAsSwOrD":"[MASKED]"}`),
		},
		{
			name:   "Whitespace around colon",
			input:  []byte(`{"password" : "abc123"}`),
			output: []byte(`{"password" : "[MASKED]"}`),
		},
		{
			name:   "Tabs and newlines around colon",
			input:  []byte("{\"password\"\t\n:\n\t\"abc123\"}"),
			output: []byte("{\"password\"\t\n:\n\t\"[MASKED]\"}"),
		},
		{
			name:   "Empty password keeps following fields",
			input:  []byte(`{"password":"","count":3}`),
			output: []byte(`{"password":"[MASKED]","count":3}`),
		},
		{
			name:   "Escaped quote inside password",
			input:  []byte(`{"password":"ab\"c","x":"y"}`),
			output: []byte(`{"password":"[MASKED]","x":"y"}`),
		},
		{
			name:   "Suggestion base",
			input:  []byte(`{"base": "hunter2", "count": 5}`),
			output: []byte(`{"base": "[MASKED]", "count": 5}`),
		},
		{
			name:   "Suggestion base upper case key with spaces",
			input:  []byte(`{"Base"  :"hunter2"}`),
			output: []byte(`{"Base"  :"[MASKED]"}`),
		},
		{
			name:   "Suggestions upper case key with spaces",
			input:  []byte(`{"SUGGESTIONS" : ["Hunt3r!#aaaa"]}`),
			output: []byte(`{"SUGGESTIONS" : [[MASKED]]}`),
		},
		{
			name:   "Suggestions",
			input:  []byte(`{"score":30,"suggestions":["Hunt3r!#aaaa","x]y\"z"],"strength":"Weak"}`),
			output: []byte(`{"score":30,"suggestions":[[MASKED]],"strength":"Weak"}`),
		},
		{
			name:   "Bearer header",
			input:  []byte("GET / HTTP/1.1\r\nAuthorization: Bearer secret-token\r\n\r\n"),
			output: []byte("GET / HTTP/1.1\r\nAuthorization: Bearer [MASKED]\r\n\r\n"),
		},
		{
			name:   "Nothing to mask",
			input:  []byte(`{"bits":40,"crackTime":"35 years"}`),
			output: []byte(`{"bits":40,"crackTime":"35 years"}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestNopSensitiveDataMaskerMask(t *testing.T) {
	input := []byte(`{"password":"abc123"}`)

	require.Equal(t, input, logx.NewNopSensitiveDataMasker().Mask(input))
}

func TestMaskAndTruncate(t *testing.T) {
	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  string
		maxLen int
		output string
	}{
		{
			name:   "Cut inside password",
			input:  `{"password":"hunter2hunter2"}`,
			maxLen: 16,
			output: `{"password":"[MA`,
		},
		{
			name:   "Cut inside suggestions",
			input:  `{"suggestions":["Hunt3r!#aaaa","Hunt3r!#bbbb"]}`,
			maxLen: 25,
			output: `{"suggestions":[[MASKED]]`,
		},
		{
			name:   "Cut inside bearer token",
			input:  "GET / HTTP/1.1\r\nAuthorization: Bearer secret-token\r\n\r\n",
			maxLen: 39,
			output: "GET / HTTP/1.1\r\nAuthorization: Bearer [",
		},
		{
			name:   "Short input kept whole",
			input:  `{"bits":40}`,
			maxLen: 100,
			output: `{"bits":40}`,
		},
		{
			name:   "No limit",
			input:  `{"password":"hunter2"}`,
			maxLen: 0,
			output: `{"password":"[MASKED]"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			output := string(logx.MaskAndTruncate(masker, []byte(tc.input), tc.maxLen))

			rq.Equal(tc.output, output)
		})
	}
}
