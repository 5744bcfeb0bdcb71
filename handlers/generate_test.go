package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/resumeforge/resumeforge/server/internal/publish"
)

func newGenerateRouter(t *testing.T, client *redis.Client) *gin.Engine {
	t.Helper()
	g := gin.New()
	NewGenerateHandler("http://localhost:3000", publish.NewRegistry(client, "test:username:")).Register(g)
	return g
}

func generateBody(username string) string {
	return fmt.Sprintf(`{
		"username": %q,
		"resumeData": {
			"personalInfo": {"fullName": "Ada Lovelace", "email": "ada@example.com"},
			"experience": [],
			"education": [],
			"skills": [],
			"selectedTemplate": null
		}
	}`, username)
}

func postGenerate(g *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	g.ServeHTTP(w, req)
	return w
}

func TestGenerate_Success(t *testing.T) {
	g := newGenerateRouter(t, nil)
	w := postGenerate(g, generateBody("my-cv"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, true, resp["success"])
	require.Equal(t, "http://localhost:3000/my-cv", resp["url"])
	require.Equal(t, "my-cv", resp["username"])
	require.Equal(t, "Resume URL generated successfully", resp["message"])
}

func TestGenerate_BadUsernameFormat(t *testing.T) {
	g := newGenerateRouter(t, nil)
	w := postGenerate(g, generateBody("Admin!"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string               `json:"error"`
		Details []publish.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Validation failed", resp.Error)
	require.NotEmpty(t, resp.Details)
	require.Equal(t, "username", resp.Details[0].Field)
	require.Contains(t, resp.Details[0].Message, "lowercase letters, numbers, and hyphens")
}

func TestGenerate_ReservedUsername(t *testing.T) {
	g := newGenerateRouter(t, nil)
	w := postGenerate(g, generateBody("admin"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Username is reserved")
}

func TestGenerate_MissingResumeData(t *testing.T) {
	g := newGenerateRouter(t, nil)
	w := postGenerate(g, `{"username": "my-cv"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string               `json:"error"`
		Details []publish.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Validation failed", resp.Error)
	require.Equal(t, "resumeData", resp.Details[0].Field)
}

func TestGenerate_BadResumeDataShape(t *testing.T) {
	g := newGenerateRouter(t, nil)
	w := postGenerate(g, `{"username": "my-cv", "resumeData": {"personalInfo": {"fullName": "", "email": "nope"}}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Validation failed")
}

func TestGenerate_InvalidJSONBody(t *testing.T) {
	g := newGenerateRouter(t, nil)
	w := postGenerate(g, `{not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid JSON body")
}

func TestGenerate_ClaimedUsernameRejected(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	g := newGenerateRouter(t, client)
	w := postGenerate(g, generateBody("jane-doe"))
	require.Equal(t, http.StatusOK, w.Code)

	w = postGenerate(g, generateBody("jane-doe"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Username is already taken")
}

func getAvailability(g *gin.Engine, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/generate"+query, nil)
	g.ServeHTTP(w, req)
	return w
}

func TestCheckAvailability_Available(t *testing.T) {
	g := newGenerateRouter(t, nil)
	w := getAvailability(g, "?username=my-cv")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, true, resp["available"])
	require.Equal(t, "my-cv", resp["username"])
}

func TestCheckAvailability_ReservedIsUnavailable(t *testing.T) {
	g := newGenerateRouter(t, nil)
	w := getAvailability(g, "?username=admin")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"available":false`)
}

func TestCheckAvailability_MalformedNeverErrors(t *testing.T) {
	g := newGenerateRouter(t, nil)
	w := getAvailability(g, "?username=Admin!")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, false, resp["available"])
	require.NotEmpty(t, resp["error"])
}

func TestCheckAvailability_MissingUsername(t *testing.T) {
	g := newGenerateRouter(t, nil)
	w := getAvailability(g, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Username is required")
}

func TestCheckAvailability_ClaimedIsUnavailable(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	g := newGenerateRouter(t, client)
	require.Equal(t, http.StatusOK, postGenerate(g, generateBody("taken-name")).Code)

	w := getAvailability(g, "?username=taken-name")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"available":false`)
}
