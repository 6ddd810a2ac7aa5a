package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"palette-backend/internal/client"
	"palette-backend/internal/generator"
	"palette-backend/internal/models"
)

func fixture(t *testing.T) *models.GenerationResult {
	t.Helper()
	g, err := generator.NewMockGenerator(0)
	require.NoError(t, err)
	return g.Fixture()
}

func TestGenerate_Success(t *testing.T) {
	want := fixture(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req models.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "luxury", req.BudgetTier)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(want)
	}))
	defer server.Close()

	got, err := client.New(server.URL, client.WithToken("tok")).Generate(context.Background(), "luxury")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGenerate_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"Required","field":"budgetTier"}`)
	}))
	defer server.Close()

	_, err := client.New(server.URL).Generate(context.Background(), "")
	assert.ErrorIs(t, err, client.ErrGenerateFailed)
	assert.Equal(t, "Failed to generate design", err.Error())
}

func TestGenerate_InvalidResponseShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"afterImageUrl":"x"}`)
	}))
	defer server.Close()

	_, err := client.New(server.URL).Generate(context.Background(), "mid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whatApplied")
}

func TestGenerate_MissingTotalEstimate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"afterImageUrl":"x","whatApplied":[],"estimateRange":{"low":1,"high":2},
			"breakdown":[],"laborSubtotal":{"low":0,"high":0},"upgradeTips":[],"savingsTips":[]}`)
	}))
	defer server.Close()

	_, err := client.New(server.URL).Generate(context.Background(), "mid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "totalEstimate: Required")
}

func TestGenerate_CaseFoldedKeysRejected(t *testing.T) {
	body, err := json.Marshal(fixture(t))
	require.NoError(t, err)
	folded := strings.Replace(string(body), `"afterImageUrl"`, `"AfterImageURL"`, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, folded)
	}))
	defer server.Close()

	_, err = client.New(server.URL).Generate(context.Background(), "mid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "afterImageUrl: Required")
}

func TestExport_ReturnsFilename(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="Palette-Design-Plan-42.pdf"`)
		io.WriteString(w, "%PDF-1.3")
	}))
	defer server.Close()

	pdf, name, err := client.New(server.URL).Export(context.Background(), fixture(t))
	require.NoError(t, err)
	assert.Equal(t, "Palette-Design-Plan-42.pdf", name)
	assert.Equal(t, "%PDF-1.3", string(pdf))
}

func TestUpload_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "space", r.FormValue("kind"))
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, `{"message":"Storage is not configured"}`)
	}))
	defer server.Close()

	_, err := client.New(server.URL).Upload(context.Background(), "space", "a.png", []byte("x"))
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "Storage is not configured", apiErr.Message)
}

func TestDeleteUpload(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotAuth = r.Method, r.URL.Path, r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := client.New(server.URL, client.WithToken("tok")).DeleteUpload(context.Background(), "uploads/u1/space/a.png")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/uploads/uploads/u1/space/a.png", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestDeleteUpload_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message":"Upload not found"}`)
	}))
	defer server.Close()

	err := client.New(server.URL).DeleteUpload(context.Background(), "uploads/u1/space/a.png")
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Upload not found", apiErr.Message)
}
