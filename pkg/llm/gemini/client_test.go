package gemini

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskWithoutKey(t *testing.T) {
	_, err := New(Config{}).Ask(t.Context(), "system", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key is empty")
}

func TestAsk(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": "Score: 80/100"}},
				},
			}},
		})
	}))
	defer srv.Close()

	c := New(Config{APIKey: "test-key", BaseURL: srv.URL})
	reply, err := c.Ask(t.Context(), "be strict", "evaluate this")
	require.NoError(t, err)

	assert.Equal(t, "Score: 80/100", reply)
	assert.True(t, strings.HasSuffix(gotPath, "models/"+DefaultModel+":generateContent"), gotPath)
	assert.Contains(t, gotBody, "evaluate this")
	assert.Contains(t, gotBody, "be strict")
}

func TestSupports(t *testing.T) {
	assert.True(t, supports([]string{"countTokens", "generateContent"}, "generateContent"))
	assert.False(t, supports([]string{"embedContent"}, "generateContent"))
	assert.False(t, supports(nil, "generateContent"))
}
