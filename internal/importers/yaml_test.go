package importers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/exporters"
)

func TestParseYAML(t *testing.T) {
	t.Run("decodes entries as text", func(t *testing.T) {
		input := `
- title: Dune
  author: Frank Herbert
  year: 1965
  genre: Fantasy
- title: Hyperion
  author: Dan Simmons
  year: "1989"
  genre: Science Fiction
`
		entries, err := ParseYAML(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, []Entry{
			{Title: "Dune", Author: "Frank Herbert", Year: "1965", Genre: "Fantasy"},
			{Title: "Hyperion", Author: "Dan Simmons", Year: "1989", Genre: "Science Fiction"},
		}, entries)
	})

	t.Run("keeps bad values for the caller to reject", func(t *testing.T) {
		input := `
- title: Dune
  year: soon
`
		entries, err := ParseYAML(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "", entries[0].Author)
		assert.Equal(t, "soon", entries[0].Year)
	})

	t.Run("empty document", func(t *testing.T) {
		entries, err := ParseYAML(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("rejects a mapping at the top level", func(t *testing.T) {
		_, err := ParseYAML(strings.NewReader("title: Dune\n"))
		assert.Error(t, err)
	})
}

func TestParseYAML_ReadsExporterOutput(t *testing.T) {
	books := []entities.Book{
		{Identity: entities.Assigned(3), Title: "Dune", Author: "Frank Herbert", Year: 1965, Genre: "Fantasy"},
	}

	var buf bytes.Buffer
	_, err := exporters.NewYAMLExporter().Export(&buf, books)
	require.NoError(t, err)

	entries, err := ParseYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Title: "Dune", Author: "Frank Herbert", Year: "1965", Genre: "Fantasy"}}, entries)
}
