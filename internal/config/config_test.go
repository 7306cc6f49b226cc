package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSearchURL, cfg.API.SearchURL)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobboerse.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  user_agent: my-script
search:
  top: 5
store:
  path: history.db
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my-script", cfg.API.UserAgent)
	assert.Equal(t, 5, cfg.Search.Top)
	assert.Equal(t, "history.db", cfg.Store.Path)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultAPIKey, cfg.API.Key)
	assert.Equal(t, 50, cfg.Search.PageSize)
	assert.Equal(t, DefaultCSVPath, cfg.Export.CSVPath)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("search: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("JOBBOERSE_CSV_PATH", "out/jobs.csv")
	t.Setenv("JOBBOERSE_DB", "jobs.db")

	cfg := Default()
	ApplyEnv(&cfg)

	assert.Equal(t, "out/jobs.csv", cfg.Export.CSVPath)
	assert.Equal(t, "jobs.db", cfg.Store.Path)
}

func TestNormalizeAndValidate_Defaults(t *testing.T) {
	out, res := NormalizeAndValidate(Default())
	assert.True(t, res.OK(), res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, Default(), out)
}

func TestNormalizeAndValidate_Errors(t *testing.T) {
	cfg := Default()
	cfg.API.SearchURL = "not a url"
	cfg.API.Key = "  "
	cfg.Search.PageSize = 0
	cfg.Search.Top = -1
	cfg.Export.CSVPath = ""

	_, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
	assert.Len(t, res.Errors, 5)
}

func TestNormalizeAndValidate_DetailURLGetsSlash(t *testing.T) {
	cfg := Default()
	cfg.API.DetailURL = "https://example.test/jobdetails"
	cfg.Search.PageSize = 500

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Equal(t, "https://example.test/jobdetails/", out.API.DetailURL)
	assert.Len(t, res.Warnings, 1)
}

func TestSaveAtomic_AndEnsureUserConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "jobboerse.yml")

	created, err := EnsureUserConfig(path)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureUserConfig(path)
	require.NoError(t, err)
	assert.False(t, created)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg.Search.Top = 3
	require.NoError(t, SaveAtomic(path, cfg))
	_, err = os.Stat(path + ".bak")
	assert.NoError(t, err)

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, again.Search.Top)
}

func TestSaveAtomic_RejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Search.Page = 0

	err := SaveAtomic(filepath.Join(t.TempDir(), "c.yml"), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.page")
}
