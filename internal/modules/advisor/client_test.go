package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSkinAdviceCarriesPersonaAndPrompt(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/models/gemini-3-flash-preview:generateContent", r.URL.Path)
		require.Equal(t, "secret", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Try the Silk Radiance Serum nightly."}]}}]}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "secret", "", zap.NewNop())
	advice := client.SkinAdvice(context.Background(), "dry patches around the nose")

	require.Equal(t, "Try the Silk Radiance Serum nightly.", advice)
	require.Equal(t, "Expert skincare advice for the following concerns: dry patches around the nose",
		got.Contents[0].Parts[0].Text)
	require.True(t, strings.HasPrefix(got.SystemInstruction.Parts[0].Text,
		"You are a luxury beauty consultant for Lumière Essence."))
	require.InDelta(t, 0.7, got.GenerationConfig.Temperature, 1e-9)
	require.InDelta(t, 0.9, got.GenerationConfig.TopP, 1e-9)
}

func TestSkinAdviceEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "secret", "", zap.NewNop())
	require.Equal(t, emptyReply, client.SkinAdvice(context.Background(), "oily T-zone"))
}

func TestSkinAdviceDegradesToApology(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, "secret", "", zap.NewNop())
	require.Equal(t, offlineReply, client.SkinAdvice(context.Background(), "redness"))

	// unreachable host degrades the same way
	srv.Close()
	require.Equal(t, offlineReply, client.SkinAdvice(context.Background(), "redness"))
}
