package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hmm/pkg/core"
)

// setupTestRepo creates a repository in a fresh temp directory.
func setupTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	dir := t.TempDir()
	repo := NewRepository(Config{Dir: dir})
	require.NoError(t, repo.Initialize(context.Background()))
	return repo, dir
}

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()

	cases := map[string][]core.Thought{
		"Empty": {},
		"Single": {
			{ID: 1, Timestamp: "1627386000", Message: "Hello, world!", Tags: "test"},
		},
		"Many": {
			{ID: 1, Timestamp: "2024-01-01", Message: "buy milk", Tags: ""},
			{ID: 5, Timestamp: "2024-01-02", Message: "How are you?", Tags: "test"},
			{ID: 3, Timestamp: "2024-01-03", Message: "", Tags: "family work"},
		},
	}

	for name, thoughts := range cases {
		t.Run(name, func(t *testing.T) {
			repo, _ := setupTestRepo(t)

			require.NoError(t, repo.Save(ctx, thoughts))
			loaded, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, thoughts, loaded)
		})
	}
}

func TestRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing File Is Empty", func(t *testing.T) {
		repo, _ := setupTestRepo(t)
		thoughts, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []core.Thought{}, thoughts)
	})

	t.Run("Missing Directory Is Empty", func(t *testing.T) {
		repo := NewRepository(Config{Dir: filepath.Join(t.TempDir(), "nope")})
		thoughts, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, thoughts)
	})

	t.Run("Empty File Is Empty", func(t *testing.T) {
		repo, _ := setupTestRepo(t)
		require.NoError(t, os.WriteFile(repo.Path, nil, 0644))

		thoughts, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, thoughts)
	})

	t.Run("Malformed Line Is A ParseError", func(t *testing.T) {
		repo, _ := setupTestRepo(t)
		content := "id,timestamp,message,tags\n1,2024-01-01,fine,\n2,2024-01-02\n3,2024-01-03,also fine,\n"
		require.NoError(t, os.WriteFile(repo.Path, []byte(content), 0644))

		thoughts, err := repo.Load(ctx)
		assert.Nil(t, thoughts)
		assert.True(t, errors.Is(err, core.ErrParse), "expected ErrParse, got %v", err)
	})

	t.Run("Unreadable Path Is An IOError", func(t *testing.T) {
		repo, _ := setupTestRepo(t)
		// Reading a directory fails with EISDIR.
		require.NoError(t, os.Mkdir(repo.Path, 0755))

		_, err := repo.Load(ctx)
		assert.True(t, errors.Is(err, core.ErrIO), "expected ErrIO, got %v", err)
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		repo, _ := setupTestRepo(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.Load(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRepository_Save(t *testing.T) {
	ctx := context.Background()
	thoughts := []core.Thought{{ID: 1, Timestamp: "2024-01-01", Message: "a", Tags: "b"}}

	t.Run("Writes Header And Rows", func(t *testing.T) {
		repo, _ := setupTestRepo(t)
		require.NoError(t, repo.Save(ctx, thoughts))

		data, err := os.ReadFile(repo.Path)
		require.NoError(t, err)
		assert.Equal(t, "id,timestamp,message,tags\n1,2024-01-01,a,b\n", string(data))
	})

	t.Run("Missing Directory Is An IOError", func(t *testing.T) {
		repo := NewRepository(Config{Dir: filepath.Join(t.TempDir(), "missing")})
		err := repo.Save(ctx, thoughts)
		assert.True(t, errors.Is(err, core.ErrIO), "expected ErrIO, got %v", err)
	})

	t.Run("Failure Keeps Previous Content", func(t *testing.T) {
		repo, dir := setupTestRepo(t)
		require.NoError(t, repo.Save(ctx, thoughts))
		before, err := os.ReadFile(repo.Path)
		require.NoError(t, err)

		if os.Geteuid() == 0 {
			t.Skip("root ignores directory permissions")
		}
		require.NoError(t, os.Chmod(dir, 0555))
		t.Cleanup(func() { os.Chmod(dir, 0755) })

		err = repo.Save(ctx, append(thoughts, core.Thought{ID: 2, Timestamp: "2024-01-02", Message: "c"}))
		assert.True(t, errors.Is(err, core.ErrIO), "expected ErrIO, got %v", err)

		after, err := os.ReadFile(repo.Path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Preserves File Mode", func(t *testing.T) {
		repo, _ := setupTestRepo(t)
		require.NoError(t, os.WriteFile(repo.Path, nil, 0600))
		require.NoError(t, repo.Save(ctx, thoughts))

		info, err := os.Stat(repo.Path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("Read Only", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewRepository(Config{Dir: dir, ReadOnly: true})

		err := repo.Save(ctx, thoughts)
		assert.ErrorIs(t, err, core.ErrReadOnly)
		_, statErr := os.Stat(repo.Path)
		assert.True(t, os.IsNotExist(statErr), "file should not exist")
	})
}

func TestRepository_Initialize(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	repo := NewRepository(Config{Dir: dir, FileName: "notes.csv"})

	require.NoError(t, repo.Initialize(context.Background()))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "notes.csv"), repo.Path)
}

func TestRepository_State(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []core.Thought{{ID: 1}, {ID: 2}}))

	state, ok := repo.State().(RepositoryState)
	require.True(t, ok)
	assert.Equal(t, repo.Path, state.Path)
	assert.Equal(t, 2, state.Records)
	assert.NotNil(t, state.LastSave)
	assert.Nil(t, state.LastLoad)
	assert.False(t, state.ReadOnly)
	assert.Equal(t, "csv-file", repo.ComponentType())
}
