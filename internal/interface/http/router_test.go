package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
	"github.com/yanqian/faq-chatbot/internal/infra/config"
	apperrors "github.com/yanqian/faq-chatbot/pkg/errors"
)

func TestRouter_AskSuccess(t *testing.T) {
	resp := faq.Response{Answer: "Use the reset link.", Source: faq.SourceFAQ, Score: 96, MatchedQuestion: "How do I reset my password?"}
	svc := &stubFAQService{
		answerFn: func(ctx context.Context, req faq.Request) (faq.Response, error) {
			require.Equal(t, "reset password how", req.Message)
			require.Equal(t, "account", req.Category)
			return resp, nil
		},
	}

	recorder := performRequest(http.MethodPost, "/ask", `{"message":"reset password how","category":"account"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got faq.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, resp, got)
}

func TestRouter_AskInvalidJSON(t *testing.T) {
	svc := &stubFAQService{}

	recorder := performRequest(http.MethodPost, "/ask", `{"message":123}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_AskCorpusUnavailable(t *testing.T) {
	svc := &stubFAQService{
		answerFn: func(ctx context.Context, req faq.Request) (faq.Response, error) {
			return faq.Response{}, apperrors.Wrap("corpus_unavailable", "corpus not loaded", nil)
		},
	}

	recorder := performRequest(http.MethodPost, "/ask", `{"message":"anything"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "corpus_unavailable", errBody["error"]["code"])
	require.Equal(t, "faq corpus is temporarily unavailable", errBody["error"]["message"])
}

func TestRouter_AskServiceFailure(t *testing.T) {
	svc := &stubFAQService{
		answerFn: func(ctx context.Context, req faq.Request) (faq.Response, error) {
			return faq.Response{}, apperrors.Wrap("boom", "pool dsn user=admin", nil)
		},
	}

	recorder := performRequest(http.MethodPost, "/ask", `{"message":"anything"}`, newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "faq_failed", errBody["error"]["code"])
	// Internal detail stays in the log, never in the response body.
	require.Equal(t, "faq lookup failed", errBody["error"]["message"])
	require.NotContains(t, recorder.Body.String(), "dsn")
}

func TestRouter_Categories(t *testing.T) {
	svc := &stubFAQService{
		categoriesFn: func(ctx context.Context) ([]string, error) {
			return []string{"account", "billing"}, nil
		},
	}

	recorder := performRequest(http.MethodGet, "/categories", "", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, []string{"account", "billing"}, body["categories"])
}

func TestRouter_CategoriesEmptyCorpus(t *testing.T) {
	svc := &stubFAQService{
		categoriesFn: func(ctx context.Context) ([]string, error) {
			return nil, nil
		},
	}

	recorder := performRequest(http.MethodGet, "/categories", "", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"categories":[]}`, recorder.Body.String())
}

func TestRouter_Reload(t *testing.T) {
	called := false
	svc := &stubFAQService{
		reloadFn: func(ctx context.Context) error {
			called = true
			return nil
		},
	}

	recorder := performRequest(http.MethodPost, "/reload", "", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, called)
}

func TestRouter_ReloadFailure(t *testing.T) {
	svc := &stubFAQService{
		reloadFn: func(ctx context.Context) error {
			return apperrors.Wrap("corpus_load", "file missing", nil)
		},
	}

	recorder := performRequest(http.MethodPost, "/reload", "", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "corpus_unavailable", errBody["error"]["code"])
	require.NotContains(t, recorder.Body.String(), "file missing")
}

func TestRouter_Health(t *testing.T) {
	recorder := performRequest(http.MethodGet, "/", "", newRouterUnderTest(t, &stubFAQService{}))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotEmpty(t, recorder.Header().Get(requestIDHeader))
}

func performRequest(method, path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, svc faq.Service) *http.Server {
	t.Helper()
	handler := NewHandler(svc, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubFAQService struct {
	answerFn     func(ctx context.Context, req faq.Request) (faq.Response, error)
	categoriesFn func(ctx context.Context) ([]string, error)
	reloadFn     func(ctx context.Context) error
}

func (s *stubFAQService) Answer(ctx context.Context, req faq.Request) (faq.Response, error) {
	if s.answerFn != nil {
		return s.answerFn(ctx, req)
	}
	return faq.Response{}, nil
}

func (s *stubFAQService) Categories(ctx context.Context) ([]string, error) {
	if s.categoriesFn != nil {
		return s.categoriesFn(ctx)
	}
	return nil, nil
}

func (s *stubFAQService) Reload(ctx context.Context) error {
	if s.reloadFn != nil {
		return s.reloadFn(ctx)
	}
	return nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
