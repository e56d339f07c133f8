package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"passmeter/internal/domain/service/meter"
	"passmeter/internal/domain/service/strength"
	"passmeter/internal/domain/service/suggest"
	"passmeter/internal/server"
	"passmeter/pkg/rest"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	app := newApp(strings.NewReader(stdin), &stdout, &stderr)
	err := app.Run(append([]string{"passcheck"}, args...))

	return stdout.String(), err
}

func TestCheck(t *testing.T) {
	rq := require.New(t)

	out, err := run(t, "", "--reference=false", "check", "Tr0ub4dor&3XYZ")
	rq.NoError(err)

	rq.Equal(
		"score:       90/100 (Very Strong, green)\n"+
			"crack time:  Centuries (92 bits)\n"+
			"criteria:    length=ok lower=ok upper=ok number=ok symbol=ok unique=ok\n",
		out,
	)
}

func TestCheckStdinJSON(t *testing.T) {
	rq := require.New(t)

	out, err := run(t, "password\nabc\n", "--json", "--seed", "7", "check")
	rq.NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	rq.Len(lines, 2)

	var first, second rest.EvaluateResponse

	rq.NoError(json.Unmarshal([]byte(lines[0]), &first))
	rq.NoError(json.Unmarshal([]byte(lines[1]), &second))

	rq.Equal(7, first.Score)
	rq.True(first.IsCommon)
	rq.Len(first.Suggestions, 3)
	rq.NotNil(first.Reference)

	rq.Equal(30, second.Score)
	rq.Equal(14, second.EntropyBits)
}

func TestCrackTime(t *testing.T) {
	testCases := []struct {
		args   []string
		output string
	}{
		{args: []string{"crack-time", "40"}, output: "35 years\n"},
		{args: []string{"crack-time", "10"}, output: "1 seconds\n"},
		{args: []string{"crack-time", "5"}, output: "Instant\n"},
		{args: []string{"--json", "crack-time", "25"}, output: `{"bits":25,"crackTime":"9 hours"}` + "\n"},
	}

	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			rq := require.New(t)

			out, err := run(t, "", tc.args...)
			rq.NoError(err)
			rq.Equal(tc.output, out)
		})
	}
}

func TestCrackTimeInvalid(t *testing.T) {
	_, err := run(t, "", "crack-time", "many")
	require.Error(t, err)
}

func TestSuggestSeeded(t *testing.T) {
	rq := require.New(t)

	first, err := run(t, "", "--seed", "42", "suggest", "-n", "4", "hello")
	rq.NoError(err)

	second, err := run(t, "", "--seed", "42", "suggest", "-n", "4", "hello")
	rq.NoError(err)

	rq.Equal(first, second)

	suggestions := strings.Split(strings.TrimSpace(first), "\n")
	rq.Len(suggestions, 4)

	for _, s := range suggestions {
		rq.NotEqual("hello", s)
		rq.GreaterOrEqual(len([]rune(s)), 12)
	}
}

func TestRemote(t *testing.T) {
	rq := require.New(t)

	svc := meter.NewService(strength.NewEvaluator(), suggest.NewGenerator())

	httpServer := httptest.NewServer(server.NewRouter(
		server.NewServer(server.NewMeterServer(svc)),
		server.RouterOptions{APIToken: "s3cret"},
	))
	defer httpServer.Close()

	out, err := run(t, "", "--remote", httpServer.URL, "--token", "s3cret", "--json", "generate")
	rq.NoError(err)

	var response rest.GenerateResponse
	rq.NoError(json.Unmarshal([]byte(out), &response))
	rq.GreaterOrEqual(len(response.Password), 12)

	out, err = run(t, "", "--remote", httpServer.URL, "--token", "s3cret", "crack-time", "16")
	rq.NoError(err)
	rq.Equal("1 minutes\n", out)

	_, err = run(t, "", "--remote", httpServer.URL, "generate")
	rq.ErrorContains(err, "Unauthorized")
}

func TestCrackTimeArgs(t *testing.T) {
	_, err := run(t, "", "crack-time")
	require.ErrorIs(t, err, errCrackTimeArgs)
}
