package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/catalog"
	"github.com/mrlokans/bookshelf/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Database: config.Database{
			Path:     filepath.Join(t.TempDir(), "books.db"),
			LogLevel: "silent",
		},
		Backup: config.Backup{
			Dir:    filepath.Join(t.TempDir(), "backups"),
			Format: "yaml",
		},
	}
}

func runCLI(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(cfg, "test")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, cfg *config.Config, args ...string) string {
	t.Helper()
	out, err := runCLI(t, cfg, "", args...)
	require.NoError(t, err)
	return out
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(testConfig(t), "1.2.3")
	require.NotNil(t, cmd)
	assert.Equal(t, "bookshelf", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)

	dbFlag := cmd.PersistentFlags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "", dbFlag.DefValue)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(testConfig(t), "test")

	for _, name := range []string{"serve", "list", "add", "update", "delete", "export", "import", "backup"} {
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestDBFlagOverridesConfig(t *testing.T) {
	cfg := testConfig(t)
	override := filepath.Join(t.TempDir(), "override.db")

	mustRun(t, cfg, "--db", override, "add", "--title", "Dune", "--author", "Frank Herbert", "--year", "1965", "--genre", "Fantasy")

	_, err := os.Stat(override)
	require.NoError(t, err)
	assert.Contains(t, mustRun(t, cfg, "list"), "No books in the catalog.")
	assert.Contains(t, mustRun(t, cfg, "--db", override, "list"), "Dune")
}

func TestParseIDArg(t *testing.T) {
	id, err := parseIDArg("12")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		_, err := parseIDArg(bad)
		assert.Error(t, err, bad)
	}
}

func TestListCommand(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		out := mustRun(t, testConfig(t), "list")
		assert.Equal(t, "No books in the catalog.\n", out)
	})

	t.Run("prints a table", func(t *testing.T) {
		cfg := testConfig(t)
		mustRun(t, cfg, "add", "--title", "Dune", "--author", "Frank Herbert", "--year", "1965", "--genre", "Fantasy")

		out := mustRun(t, cfg, "list")

		assert.Equal(t,
			"ID  TITLE  AUTHOR         YEAR  GENRE\n"+
				"1   Dune   Frank Herbert  1965  Fantasy\n",
			out)
	})
}

func TestAddCommand(t *testing.T) {
	t.Run("adds a book", func(t *testing.T) {
		out := mustRun(t, testConfig(t), "add", "--title", " Dune ", "--author", "Frank Herbert", "--year", "1965", "--genre", "Fantasy")
		assert.Equal(t, "Added Book: 1, Title: Dune, Author: Frank Herbert, Year: 1965, Genre: Fantasy\n", out)
	})

	t.Run("requires every field", func(t *testing.T) {
		cfg := testConfig(t)
		_, err := runCLI(t, cfg, "", "add", "--title", "Dune", "--year", "1965", "--genre", "Fantasy")
		assert.ErrorIs(t, err, catalog.ErrMissingFields)
	})

	t.Run("requires a numeric year", func(t *testing.T) {
		cfg := testConfig(t)
		_, err := runCLI(t, cfg, "", "add", "--title", "Dune", "--author", "Frank Herbert", "--year", "MCMLXV", "--genre", "Fantasy")
		assert.ErrorIs(t, err, catalog.ErrInvalidYear)

		assert.Contains(t, mustRun(t, cfg, "list"), "No books in the catalog.")
	})
}

func TestUpdateCommand(t *testing.T) {
	t.Run("changes only the given fields", func(t *testing.T) {
		cfg := testConfig(t)
		mustRun(t, cfg, "add", "--title", "Dune", "--author", "Frank Herbert", "--year", "1965", "--genre", "Fantasy")

		out := mustRun(t, cfg, "update", "1", "--title", "God Emperor of Dune", "--year", "1981")

		assert.Equal(t, "Updated Book: 1, Title: God Emperor of Dune, Author: Frank Herbert, Year: 1981, Genre: Fantasy\n", out)
	})

	t.Run("rejects clearing a field", func(t *testing.T) {
		cfg := testConfig(t)
		mustRun(t, cfg, "add", "--title", "Dune", "--author", "Frank Herbert", "--year", "1965", "--genre", "Fantasy")

		_, err := runCLI(t, cfg, "", "update", "1", "--genre", "")
		assert.ErrorIs(t, err, catalog.ErrMissingFields)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := runCLI(t, testConfig(t), "", "update", "5", "--title", "X")
		assert.ErrorIs(t, err, catalog.ErrBookNotFound)
	})
}

func TestDeleteCommand(t *testing.T) {
	t.Run("asks for confirmation", func(t *testing.T) {
		cfg := testConfig(t)
		mustRun(t, cfg, "add", "--title", "Dune", "--author", "Frank Herbert", "--year", "1965", "--genre", "Fantasy")

		out, err := runCLI(t, cfg, "n\n", "delete", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Cancelled.")
		assert.Contains(t, mustRun(t, cfg, "list"), "Dune")

		out, err = runCLI(t, cfg, "y\n", "delete", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Book removed.")
		assert.Contains(t, mustRun(t, cfg, "list"), "No books in the catalog.")
	})

	t.Run("missing id is not an error", func(t *testing.T) {
		out := mustRun(t, testConfig(t), "delete", "--yes", "77")
		assert.Equal(t, "Book removed.\n", out)
	})
}

func TestExportImportRoundTrip(t *testing.T) {
	source := testConfig(t)
	mustRun(t, source, "add", "--title", "Dune", "--author", "Frank Herbert", "--year", "1965", "--genre", "Fantasy")
	mustRun(t, source, "add", "--title", "Hyperion", "--author", "Dan Simmons", "--year", "1989", "--genre", "Science Fiction")

	exportPath := filepath.Join(t.TempDir(), "catalog.yaml")
	out := mustRun(t, source, "export", "--format", "yaml", "--output", exportPath)
	assert.Equal(t, "Exported 2 books to "+exportPath+"\n", out)

	target := testConfig(t)
	out = mustRun(t, target, "import", exportPath)
	assert.Equal(t, "Imported 2/2 books\n", out)

	assert.Equal(t, mustRun(t, source, "list"), mustRun(t, target, "list"))
}

func TestExportCommand_Markdown(t *testing.T) {
	cfg := testConfig(t)
	mustRun(t, cfg, "add", "--title", "Dune", "--author", "Frank Herbert", "--year", "1965", "--genre", "Fantasy")

	out := mustRun(t, cfg, "export", "-f", "markdown")

	assert.Contains(t, out, "| 1 | Dune | Frank Herbert | 1965 | Fantasy |")
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	_, err := runCLI(t, testConfig(t), "", "export", "--format", "csv")
	assert.ErrorContains(t, err, "unknown format")
}

func TestImportCommand_ReportsBadEntries(t *testing.T) {
	importPath := filepath.Join(t.TempDir(), "books.yaml")
	content := `
- title: Dune
  author: Frank Herbert
  year: 1965
  genre: Fantasy
- title: Untitled
  author: Anonymous
  year: someday
  genre: Mystery
- title: Hyperion
  year: 1989
  genre: Science Fiction
`
	require.NoError(t, os.WriteFile(importPath, []byte(content), 0o600))

	t.Run("dry run leaves the catalog alone", func(t *testing.T) {
		cfg := testConfig(t)
		out := mustRun(t, cfg, "import", "--dry-run", importPath)

		assert.Contains(t, out, "Dry run: 1/3 books would be imported")
		assert.Contains(t, mustRun(t, cfg, "list"), "No books in the catalog.")
	})

	t.Run("imports valid entries", func(t *testing.T) {
		cfg := testConfig(t)
		out := mustRun(t, cfg, "import", importPath)

		assert.Contains(t, out, "Imported 1/3 books")
		assert.Contains(t, out, `entry 2 ("Untitled"): year must be a number`)
		assert.Contains(t, out, `entry 3 ("Hyperion"): all fields are required`)
	})
}

func TestBackupCommand(t *testing.T) {
	cfg := testConfig(t)
	mustRun(t, cfg, "add", "--title", "Dune", "--author", "Frank Herbert", "--year", "1965", "--genre", "Fantasy")

	out := mustRun(t, cfg, "backup", "--format", "markdown")

	assert.True(t, strings.HasPrefix(out, "Backed up 1 books to "+cfg.Backup.Dir), out)
	matches, err := filepath.Glob(filepath.Join(cfg.Backup.Dir, "bookshelf-*.md"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	content, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "| 1 | Dune | Frank Herbert | 1965 | Fantasy |")
}
