package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeBoardFile writes a CUE board file into a fresh directory.
func writeBoardFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "boards.cue"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoadBoards(t *testing.T) {
	dir := writeBoardFile(t, `
boards: {
	backlog: ["write docs", "fix login"]
	doing:   ["ship v2"]
}
`)

	result, err := LoadBoards(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, result.FileCount)
	require.Len(t, result.Boards, 2)

	// Groups sorted, titles in source order.
	assert.Equal(t, "backlog", result.Boards[0].Group)
	assert.Equal(t, []string{"write docs", "fix login"}, result.Boards[0].Titles)
	assert.Equal(t, "doing", result.Boards[1].Group)
	assert.Equal(t, []string{"ship v2"}, result.Boards[1].Titles)
}

func TestLoadBoards_MissingDirectory(t *testing.T) {
	_, err := LoadBoards(filepath.Join(t.TempDir(), "nope"))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadBoards_NoCUEFiles(t *testing.T) {
	_, err := LoadBoards(t.TempDir())

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNoFiles, loadErr.Code)
}

func TestLoadBoards_WrongShape(t *testing.T) {
	dir := writeBoardFile(t, `
boards: {
	backlog: [1, 2, 3]
}
`)

	_, err := LoadBoards(dir)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeInvalid, loadErr.Code)
}

func TestLoadBoards_MissingBoardsStruct(t *testing.T) {
	dir := writeBoardFile(t, `
lists: {
	backlog: ["a"]
}
`)

	_, err := LoadBoards(dir)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeInvalid, loadErr.Code)
}

func TestLoadBoards_SyntaxError(t *testing.T) {
	dir := writeBoardFile(t, `boards: {`)

	_, err := LoadBoards(dir)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeLoadFailed, loadErr.Code)
}

func TestSeed_CreatesRecordsInOrder(t *testing.T) {
	db := testDB(t)
	dir := writeBoardFile(t, `
boards: {
	backlog: ["write docs", "fix login"]
	doing:   ["ship v2"]
}
`)

	out, err := runCLI(t, db, "seed", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 3 record(s)")

	listing, err := runCLI(t, db, "list", "backlog")
	require.NoError(t, err)
	assert.Contains(t, listing, "1. write docs")
	assert.Contains(t, listing, "2. fix login")
}

func TestSeed_AppendsToExistingGroup(t *testing.T) {
	db := testDB(t)

	addJSON(t, db, "backlog", "already here")

	dir := writeBoardFile(t, `
boards: {
	backlog: ["newcomer"]
}
`)

	_, err := runCLI(t, db, "seed", dir)
	require.NoError(t, err)

	listing, err := runCLI(t, db, "list", "backlog")
	require.NoError(t, err)
	assert.Contains(t, listing, "1. already here")
	assert.Contains(t, listing, "2. newcomer")
}

func TestSeed_BadBoardsDir(t *testing.T) {
	db := testDB(t)

	_, err := runCLI(t, db, "seed", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
