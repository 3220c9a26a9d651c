package api_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"calcdesigns/catalog"
	"calcdesigns/config"
	"calcdesigns/web"
	"calcdesigns/web/api"

	"github.com/rohanthewiz/rweb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type apiTestServer struct {
	baseURL string
	client  *http.Client
}

func setupAPITestServer(t *testing.T) *apiTestServer {
	t.Helper()

	readyChan := make(chan struct{}, 1)
	srv := web.NewTestServer(rweb.ServerOptions{
		ReadyChan: readyChan,
		Address:   "localhost:", // Dynamic port assignment
	}, config.Default())

	go func() {
		_ = srv.Run()
	}()
	<-readyChan

	return &apiTestServer{
		baseURL: fmt.Sprintf("http://localhost:%s", srv.GetListenPort()),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *apiTestServer) get(t *testing.T, path, accept string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, s.baseURL+path, nil)
	require.NoError(t, err)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := s.client.Do(req)
	require.NoError(t, err)
	return resp
}

type calculatorsResponse struct {
	Success bool                 `json:"success" msgpack:"success"`
	Data    []catalog.Calculator `json:"data" msgpack:"data"`
	Error   string               `json:"error" msgpack:"error"`
}

func TestCalculatorsAPI(t *testing.T) {
	server := setupAPITestServer(t)

	t.Run("list as json", func(t *testing.T) {
		resp := server.get(t, "/api/v1/calculators", "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result calculatorsResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.True(t, result.Success)
		assert.Equal(t, catalog.Calculators(), result.Data)
	})

	t.Run("list as msgpack", func(t *testing.T) {
		resp := server.get(t, "/api/v1/calculators", api.MsgPackContentType)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, api.MsgPackContentType, resp.Header.Get("Content-Type"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var result calculatorsResponse
		require.NoError(t, msgpack.Unmarshal(body, &result))
		assert.True(t, result.Success)
		require.Len(t, result.Data, 6)
		assert.Equal(t, "sip", result.Data[0].ID)
		assert.Equal(t, catalog.Gradient{From: "cyan-500", To: "blue-600"}, result.Data[5].Gradient)
	})

	t.Run("get one", func(t *testing.T) {
		resp := server.get(t, "/api/v1/calculators/goal", "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Success bool               `json:"success"`
			Data    catalog.Calculator `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "Goal Planning", result.Data.Title)
		assert.Equal(t, catalog.IconTarget, result.Data.Icon)
	})

	t.Run("unknown calculator", func(t *testing.T) {
		resp := server.get(t, "/api/v1/calculators/emi", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var result api.APIResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.False(t, result.Success)
		assert.Equal(t, "calculator not found", result.Error)
	})

	t.Run("unknown calculator as msgpack", func(t *testing.T) {
		resp := server.get(t, "/api/v1/calculators/emi", api.MsgPackContentType)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, api.MsgPackContentType, resp.Header.Get("Content-Type"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var result api.APIResponse
		require.NoError(t, msgpack.Unmarshal(body, &result))
		assert.False(t, result.Success)
		assert.Equal(t, "calculator not found", result.Error)
	})
}

func TestDesignsAPI(t *testing.T) {
	server := setupAPITestServer(t)

	var result struct {
		Success bool             `json:"success"`
		Data    []api.DesignInfo `json:"data"`
	}

	resp := server.get(t, "/api/v1/designs", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	resp.Body.Close()

	require.Len(t, result.Data, 10)
	assert.Equal(t, api.DesignInfo{
		Set:     "classic",
		Number:  1,
		Name:    "Gradient Glassmorphism",
		Tagline: "Frosted cards over drifting color blobs",
		Path:    "/designs/classic/1",
	}, result.Data[0])
	assert.Equal(t, "illustrated", result.Data[9].Set)
	assert.Equal(t, 5, result.Data[9].Number)

	resp = server.get(t, "/api/v1/designs?set=illustrated", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	resp.Body.Close()
	assert.Len(t, result.Data, 5)

	resp = server.get(t, "/api/v1/designs?set=retro", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	resp.Body.Close()

	resp = server.get(t, "/api/v1/designs?set=retro", api.MsgPackContentType)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, api.MsgPackContentType, resp.Header.Get("Content-Type"))
}

func TestHealth(t *testing.T) {
	server := setupAPITestServer(t)

	resp := server.get(t, "/health", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "ok", result["status"])
}
