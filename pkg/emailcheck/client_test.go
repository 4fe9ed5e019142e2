package emailcheck

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkServer(t *testing.T, body string) Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.NotEmpty(t, r.URL.Query().Get("email"))
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient("test-key", WithBaseURL(srv.URL))
}

func TestCheckEmail_SMTPValid(t *testing.T) {
	t.Parallel()

	client := checkServer(t, `{
		"email":"jane.doe@acme.com",
		"deliverability":"DELIVERABLE",
		"quality_score":"0.95",
		"is_valid_format":{"value":true},
		"is_mx_found":{"value":true},
		"is_smtp_valid":{"value":true},
		"is_disposable_email":{"value":false}
	}`)

	got, err := client.CheckEmail(context.Background(), "jane.doe@acme.com")
	require.NoError(t, err)
	assert.Equal(t, VerdictValid, got.Verdict)
	assert.True(t, got.Deliverable())
	assert.InDelta(t, 0.95, got.QualityScore, 0.001)
}

func TestCheckEmail_Disposable(t *testing.T) {
	t.Parallel()

	client := checkServer(t, `{
		"is_valid_format":{"value":true},
		"is_smtp_valid":{"value":true},
		"is_disposable_email":{"value":true}
	}`)

	got, err := client.CheckEmail(context.Background(), "x@mailinator.com")
	require.NoError(t, err)
	assert.Equal(t, VerdictInvalidDisposable, got.Verdict)
	assert.False(t, got.Deliverable())
}

func TestCheckEmail_BadFormat(t *testing.T) {
	t.Parallel()

	client := checkServer(t, `{"is_valid_format":{"value":false}}`)

	got, err := client.CheckEmail(context.Background(), "not-an-email")
	require.NoError(t, err)
	assert.Equal(t, VerdictInvalidFormat, got.Verdict)
}

func TestCheckEmail_QualityScoreFallback(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		score   string
		verdict string
	}{
		{"0.7", VerdictLikelyValid},
		{"0.69", VerdictUnknown},
	} {
		client := checkServer(t, fmt.Sprintf(`{
			"quality_score":%q,
			"is_valid_format":{"value":true},
			"is_smtp_valid":{"value":false}
		}`, tc.score))

		got, err := client.CheckEmail(context.Background(), "jane@acme.com")
		require.NoError(t, err)
		assert.Equal(t, tc.verdict, got.Verdict, "quality %s", tc.score)
	}
}

func TestCheckEmail_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.CheckEmail(context.Background(), "jane@acme.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
