package postport_test

import (
	"testing"
	"time"

	"github.com/fwojciec/postport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatedFromFilename(t *testing.T) {
	t.Parallel()

	t.Run("parses date before first underscore", func(t *testing.T) {
		t.Parallel()

		created, err := postport.CreatedFromFilename("exports/2019-05-10_12345-my-title.html")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2019, 5, 10, 0, 0, 0, 0, time.UTC), created)
	})

	t.Run("ignores later underscores", func(t *testing.T) {
		t.Parallel()

		created, err := postport.CreatedFromFilename("2020-01-02_a_b_c.html")

		require.NoError(t, err)
		assert.Equal(t, 2020, created.Year())
		assert.Equal(t, time.January, created.Month())
		assert.Equal(t, 2, created.Day())
	})

	t.Run("rejects filename without underscore", func(t *testing.T) {
		t.Parallel()

		_, err := postport.CreatedFromFilename("2019-05-10.html")

		require.Error(t, err)
		assert.Equal(t, postport.EINVALID, postport.ErrorCode(err))
	})

	t.Run("rejects token that is not a date", func(t *testing.T) {
		t.Parallel()

		_, err := postport.CreatedFromFilename("draft_my-title.html")

		require.Error(t, err)
		assert.Equal(t, postport.EINVALID, postport.ErrorCode(err))
		assert.Contains(t, postport.ErrorMessage(err), "draft")
	})
}

func TestTitleFromFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2019-05-10_my-title", postport.TitleFromFilename("/tmp/2019-05-10_my-title.html"))
	assert.Equal(t, "notes", postport.TitleFromFilename("notes"))
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1_abc_def.jpeg", postport.SanitizeFilename("1*abc def.jpeg"))
	assert.Equal(t, "photo-1.final_v2.png", postport.SanitizeFilename("photo-1.final_v2.png"))
	assert.Equal(t, "caf_.gif", postport.SanitizeFilename("café.gif"))
}

func TestAssetFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1_Xy9k.jpeg", postport.AssetFilename("/max/2000/1*Xy9k.jpeg"))
	assert.Equal(t, "image", postport.AssetFilename("/"))
	assert.Equal(t, "image", postport.AssetFilename(""))
}
