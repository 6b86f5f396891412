package schema_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Webbist-dev/strapi/pkg/schema"
)

const articleYAML = `
uid: api::article.article
modelName: article
kind: contentType
options:
  draftAndPublish: true
attributes:
  title:
    type: string
    required: true
    unique: true
  slug:
    type: uid
    targetField: title
  status:
    type: enumeration
    enum: [draft, review, published]
`

func TestParseYAML(t *testing.T) {
	t.Run("decodes and validates a schema document", func(t *testing.T) {
		s, err := schema.ParseYAML([]byte(articleYAML))
		require.NoError(t, err)

		assert.Equal(t, "api::article.article", s.UID)
		assert.Equal(t, "article", s.ModelName)
		assert.Equal(t, schema.KindContentType, s.Kind)
		assert.True(t, s.Options.DraftAndPublish)

		title, ok := s.Attribute("title")
		require.True(t, ok)
		assert.True(t, title.Unique)
		assert.True(t, title.Required)

		slug, ok := s.Attribute("slug")
		require.True(t, ok)
		assert.Equal(t, schema.TypeUID, slug.Type)
		assert.Equal(t, "title", slug.TargetField)
		assert.True(t, slug.IsUnique())

		status, ok := s.Attribute("status")
		require.True(t, ok)
		assert.Equal(t, []string{"draft", "review", "published"}, status.Enum)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := schema.ParseYAML([]byte("attributes: ["))
		assert.ErrorIs(t, err, schema.ErrFailedToParseSchema)
	})

	t.Run("rejects invalid schema content", func(t *testing.T) {
		_, err := schema.ParseYAML([]byte("uid: x\nkind: contentType\n"))
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
	})
}

func TestRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		reg := schema.NewRegistry()
		s, err := schema.ParseYAML([]byte(articleYAML))
		require.NoError(t, err)
		require.NoError(t, reg.Register(s))

		got, err := reg.Get("api::article.article")
		require.NoError(t, err)
		assert.Same(t, s, got)
	})

	t.Run("rejects duplicate uid", func(t *testing.T) {
		reg := schema.NewRegistry()
		s, err := schema.ParseYAML([]byte(articleYAML))
		require.NoError(t, err)
		require.NoError(t, reg.Register(s))
		assert.ErrorIs(t, reg.Register(s), schema.ErrDuplicateSchema)
	})

	t.Run("unknown uid is not found", func(t *testing.T) {
		reg := schema.NewRegistry()
		_, err := reg.Get("api::missing.missing")
		assert.ErrorIs(t, err, schema.ErrSchemaNotFound)
	})

	t.Run("rejects invalid schema at registration", func(t *testing.T) {
		reg := schema.NewRegistry()
		err := reg.Register(&schema.Schema{UID: "api::broken.broken"})
		assert.ErrorIs(t, err, schema.ErrInvalidSchema)
	})
}

func TestRegistryLoadFS(t *testing.T) {
	t.Run("loads every yaml document in the tree", func(t *testing.T) {
		fsys := fstest.MapFS{
			"article.yaml": &fstest.MapFile{Data: []byte(articleYAML)},
			"nested/tag.yml": &fstest.MapFile{Data: []byte(`
uid: api::tag.tag
modelName: tag
kind: contentType
attributes:
  name:
    type: string
    unique: true
`)},
			"README.md": &fstest.MapFile{Data: []byte("ignored")},
		}

		reg := schema.NewRegistry()
		require.NoError(t, reg.LoadFS(fsys))

		assert.ElementsMatch(t, []string{"api::article.article", "api::tag.tag"}, reg.UIDs())
	})

	t.Run("reports the failing file", func(t *testing.T) {
		fsys := fstest.MapFS{
			"broken.yaml": &fstest.MapFile{Data: []byte("kind: contentType")},
		}

		reg := schema.NewRegistry()
		err := reg.LoadFS(fsys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.yaml")
	})
}
