package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type fakeAPI struct {
	*httptest.Server
}

func (f fakeAPI) src(path string) string {
	return f.URL + "/breeds/" + path
}

func newFakeAPI(t *testing.T) fakeAPI {
	t.Helper()
	var api fakeAPI

	reply := func(w http.ResponseWriter, message any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"message": message, "status": "success"})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/breeds/list/all", func(w http.ResponseWriter, r *http.Request) {
		reply(w, map[string][]string{"bulldog": {"french", "boston"}, "pug": {}})
	})
	mux.HandleFunc("/api/breed/bulldog/french/images", func(w http.ResponseWriter, r *http.Request) {
		reply(w, []string{api.src("bulldog-french/f1.jpg")})
	})
	mux.HandleFunc("/api/breed/zzz/images", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Breed not found", "status": "error"})
	})
	mux.HandleFunc("/api/breeds/image/random", func(w http.ResponseWriter, r *http.Request) {
		reply(w, api.src("pug/p1.png"))
	})
	mux.HandleFunc("/breeds/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(pngHeader)
	})

	api.Server = httptest.NewServer(mux)
	t.Cleanup(api.Close)
	return api
}

type cliEnv struct {
	configPath  string
	dataDir     string
	downloadDir string
}

func newCLIEnv(t *testing.T, api fakeAPI) cliEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	env := cliEnv{
		configPath:  filepath.Join(dir, "config.toml"),
		dataDir:     filepath.Join(dir, "data"),
		downloadDir: filepath.Join(dir, "downloads"),
	}
	body := fmt.Sprintf(`
api_base_url = %q
random_count = 2
data_dir = %q
download_dir = %q
`, api.URL+"/api", env.dataDir, env.downloadDir)
	require.NoError(t, os.WriteFile(env.configPath, []byte(body), 0o600))
	return env
}

func (e cliEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListFiltersCatalog(t *testing.T) {
	api := newFakeAPI(t)
	env := newCLIEnv(t, api)

	out, _, err := env.run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "bulldog\nbulldog - french\nbulldog - boston\npug\n", out)

	out, _, err = env.run(t, "list", "BOST")
	require.NoError(t, err)
	assert.Equal(t, "bulldog - boston\n", out)
}

func TestSearchSubBreed(t *testing.T) {
	api := newFakeAPI(t)
	env := newCLIEnv(t, api)

	out, _, err := env.run(t, "search", "bulldog", "-", "french")
	require.NoError(t, err)
	assert.Contains(t, out, "bulldog - french")
	assert.Contains(t, out, api.src("bulldog-french/f1.jpg"))
}

func TestSearchUnknownBreedFallsBackToRandom(t *testing.T) {
	api := newFakeAPI(t)
	env := newCLIEnv(t, api)

	out, errOut, err := env.run(t, "search", "zzz")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Error searching breed")
	assert.Contains(t, errOut, "showing random dogs")
	assert.Contains(t, out, api.src("pug/p1.png"))
}

func TestLikeUnlikeAndList(t *testing.T) {
	api := newFakeAPI(t)
	env := newCLIEnv(t, api)
	src := api.src("pug/p1.png")

	out, _, err := env.run(t, "liked")
	require.NoError(t, err)
	assert.Equal(t, "No liked breeds found\n", out)

	out, _, err = env.run(t, "like", src, src)
	require.NoError(t, err)
	assert.Equal(t, "1 liked\n", out)

	data, err := os.ReadFile(filepath.Join(env.dataDir, "likedBreeds.json"))
	require.NoError(t, err)
	assert.JSONEq(t, fmt.Sprintf("[%q]", src), string(data))

	out, _, err = env.run(t, "liked")
	require.NoError(t, err)
	assert.Contains(t, out, src)
	assert.Contains(t, out, "♥")

	out, _, err = env.run(t, "unlike", src)
	require.NoError(t, err)
	assert.Equal(t, "0 liked\n", out)
}

func TestDownloadLiked(t *testing.T) {
	api := newFakeAPI(t)
	env := newCLIEnv(t, api)

	_, _, err := env.run(t, "like", api.src("pug/p1.png"), api.src("bulldog-french/f1.jpg"))
	require.NoError(t, err)

	out, _, err := env.run(t, "liked", "--download")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, path := range lines {
		assert.FileExists(t, path)
		assert.Equal(t, env.downloadDir, filepath.Dir(path))
	}
}

func TestDownloadOne(t *testing.T) {
	api := newFakeAPI(t)
	env := newCLIEnv(t, api)

	out, _, err := env.run(t, "download", api.src("pug/p1.png"))
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, "pug-p1.png", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
}

func TestRandomCount(t *testing.T) {
	api := newFakeAPI(t)
	env := newCLIEnv(t, api)

	out, _, err := env.run(t, "random", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, api.src("pug/p1.png")))
}

func TestCorruptFavoritesFails(t *testing.T) {
	api := newFakeAPI(t)
	env := newCLIEnv(t, api)
	require.NoError(t, os.MkdirAll(env.dataDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.dataDir, "likedBreeds.json"), []byte("{oops"), 0o644))

	_, _, err := env.run(t, "liked")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "likedBreeds.json")
}

func TestLogsShowsCommandActivity(t *testing.T) {
	api := newFakeAPI(t)
	env := newCLIEnv(t, api)

	_, _, err := env.run(t, "search", "zzz")
	require.NoError(t, err)

	out, _, err := env.run(t, "logs", "-n", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "command=search")
}
