package filetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_When_KnownExtensions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want Category
	}{
		{"photo.png", Image},
		{"photo.JPEG", Image},
		{"clip.mkv", Video},
		{"song.mp3", Music},
		{"song.flac", Lossless},
		{"secret.gpg", Crypto},
		{"paper.pdf", Document},
		{"backup.tar.gz", Compressed},
		{"scratch.tmp", Temp},
		{"module.o", Compiled},
		{"main.go", Source},
		{"lib.rs", Source},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.name), "name %q", tc.name)
	}
}

func TestClassify_When_BuildFileNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Build, Classify("Makefile"))
	assert.Equal(t, Build, Classify("Cargo.toml"))
	assert.Equal(t, Build, Classify("go.mod"))
	assert.Equal(t, Build, Classify("CMakeLists.txt"))

	// Only the exact name counts.
	assert.Equal(t, None, Classify("Makefile.old"))
}

func TestClassify_When_EditorScratchNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Temp, Classify("notes.txt~"))
	assert.Equal(t, Temp, Classify("#draft.txt#"))
	assert.Equal(t, Temp, Classify("main.go.swp"))
}

func TestClassify_When_Unrecognized(t *testing.T) {
	t.Parallel()

	assert.Equal(t, None, Classify("README"))
	assert.Equal(t, None, Classify("data.xyzzy"))
	assert.Equal(t, None, Classify(""))
	assert.Equal(t, None, Classify("#"))
}

func TestCategory_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image", Image.String())
	assert.Equal(t, "source", Source.String())
	assert.Equal(t, "none", None.String())
}
