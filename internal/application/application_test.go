package application_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"passmeter/internal/application"
	"passmeter/internal/config"
)

func TestNewMeterService(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	svc := application.NewMeterService(config.Meter{
		SuggestionCount:     2,
		SuggestionThreshold: 60,
		MaxAttempts:         1000,
		CacheTTL:            time.Minute,
		ReferenceEnabled:    true,
		WeakWords:           []string{"hunter"},
	})

	report, err := svc.Check(ctx, "hunter2")
	rq.NoError(err)
	rq.True(report.IsCommon)
	rq.Len(report.Suggestions, 2)
	rq.NotNil(report.Reference)

	report, err = svc.Check(ctx, "password")
	rq.NoError(err)
	rq.False(report.IsCommon, "custom list replaces the defaults")
}

func TestNewMeterServiceWithoutReference(t *testing.T) {
	rq := require.New(t)

	svc := application.NewMeterService(config.Meter{
		SuggestionCount:     3,
		SuggestionThreshold: 60,
	})

	report, err := svc.Check(context.Background(), "abc")
	rq.NoError(err)
	rq.Nil(report.Reference)
	rq.Len(report.Suggestions, 3)
}

func TestRun(t *testing.T) {
	rq := require.New(t)

	t.Setenv("HTTP_LISTEN_ADDRESS", "127.0.0.1:10030")
	t.Setenv("PROBE_LISTEN_ADDRESS", "127.0.0.1:10031")
	t.Setenv("METRICS_LISTEN_ADDRESS", "127.0.0.1:10032")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "1s")

	cfg, err := config.Load()
	rq.NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	rq.NoError(application.Run(ctx, cfg))
}

func TestRunReadinessKeepsMetricsClean(t *testing.T) {
	rq := require.New(t)

	t.Setenv("HTTP_LISTEN_ADDRESS", "127.0.0.1:10040")
	t.Setenv("PROBE_LISTEN_ADDRESS", "127.0.0.1:10041")
	t.Setenv("METRICS_LISTEN_ADDRESS", "127.0.0.1:10042")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "1s")

	cfg, err := config.Load()
	rq.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)

	go func() { done <- application.Run(ctx, cfg) }()

	get := func(url string) (int, string) {
		resp, err := http.Get(url) //nolint:noctx // test
		if err != nil {
			return 0, ""
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)

		return resp.StatusCode, string(body)
	}

	rq.Eventually(func() bool {
		status, _ := get("http://127.0.0.1:10041/ready")
		return status == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	for range 5 {
		status, _ := get("http://127.0.0.1:10041/ready")
		rq.Equal(http.StatusOK, status)
	}

	status, body := get("http://127.0.0.1:10042/metrics")
	rq.Equal(http.StatusOK, status)
	rq.NotContains(body, "passmeter_checks_total")
	rq.Contains(body, "passmeter_score_count 0")

	cancel()
	rq.NoError(<-done)
}
