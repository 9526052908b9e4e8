package scraper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemina/startup-cli/internal/model"
)

func TestSaveRaw_ThenLoadRaw(t *testing.T) {
	dir := t.TempDir()

	cabal := []model.RawRecord{
		{Name: "Kuda Bank", Source: "techcabal"},
		{Name: "Flutterwave", Source: "techcabal"},
	}
	point := []model.RawRecord{
		{Name: "Moniepoint", Source: "techpoint"},
	}

	cabalPath, err := SaveRaw(dir, "techcabal", cabal)
	require.NoError(t, err)
	assert.FileExists(t, cabalPath)

	_, err = SaveRaw(dir, "techpoint", point)
	require.NoError(t, err)

	bySource, err := LoadRaw(dir)
	require.NoError(t, err)
	require.Len(t, bySource, 2)
	assert.Len(t, bySource["techcabal"], 2)
	assert.Len(t, bySource["techpoint"], 1)
	assert.Equal(t, "Moniepoint", bySource["techpoint"][0].Name)
}

func TestSaveRaw_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "raw")
	_, err := SaveRaw(dir, "techcabal", nil)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestLoadRaw_SkipsNonJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))
	_, err := SaveRaw(dir, "techcabal", []model.RawRecord{{Name: "Kuda"}})
	require.NoError(t, err)

	bySource, err := LoadRaw(dir)
	require.NoError(t, err)
	assert.Len(t, bySource, 1)
}

func TestLoadRaw_SourceFromFilename(t *testing.T) {
	dir := t.TempDir()
	raw := `{"records":[{"name":"Kuda"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "techcabal_20240101_000000.json"), []byte(raw), 0o644))

	bySource, err := LoadRaw(dir)
	require.NoError(t, err)
	require.Len(t, bySource["techcabal"], 1)
	assert.Equal(t, "Kuda", bySource["techcabal"][0].Name)
}

func TestLoadRaw_MalformedSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	_, err := LoadRaw(dir)
	require.Error(t, err)
}

func TestLoadRaw_MissingDir(t *testing.T) {
	_, err := LoadRaw(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
