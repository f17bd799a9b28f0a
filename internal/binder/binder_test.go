package binder

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/rulesync/internal/checksum"
	"github.com/vvka-141/rulesync/internal/files/filesystem"
	"github.com/vvka-141/rulesync/pkg/rulesync"
)

func newTestBinder() (*Binder, *filesystem.MemoryFileSystem) {
	mfs := filesystem.NewMemoryFileSystem("/p")
	return NewBinderWithFS(mfs), mfs
}

func targets() []Target {
	return []Target{
		{
			Name:         "readme",
			TemplatePath: "/p/templates/README.md.template",
			OutputPath:   "/p/README.md",
			Marker:       "<!-- RULES_README -->",
			Block:        "### Style",
		},
		{
			Name:         "index",
			TemplatePath: "/p/templates/agent-rules.md.template",
			OutputPath:   "/p/agent-rules.md",
			Marker:       "<!-- RULES_INDEX -->",
			Block:        "\n| Rule Domain |",
		},
	}
}

func addTemplates(mfs *filesystem.MemoryFileSystem) {
	mfs.AddFile("templates/README.md.template", "# Rules\n\n<!-- RULES_README -->\n\nFooter\n")
	mfs.AddFile("templates/agent-rules.md.template", "# Index\n<!-- RULES_INDEX -->\n")
}

func TestBind(t *testing.T) {
	tests := []struct {
		name        string
		template    string
		want        string
		substituted bool
	}{
		{"single marker", "a <!--M--> b", "a X b", true},
		{"first occurrence only", "<!--M--> <!--M-->", "X <!--M-->", true},
		{"marker absent", "no marker here", "no marker here", false},
		{"marker alone", "<!--M-->", "X", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Bind(tt.template, "<!--M-->", "X")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.substituted, ok)
		})
	}
}

func TestPrepare(t *testing.T) {
	b, mfs := newTestBinder()
	addTemplates(mfs)

	docs, err := b.Prepare(targets())
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "# Rules\n\n### Style\n\nFooter\n", string(docs[0].Content))
	assert.Equal(t, "# Index\n\n| Rule Domain |\n", string(docs[1].Content))
	assert.True(t, docs[0].Substituted)
	assert.Equal(t, checksum.New().CalculateRaw(docs[0].Content), docs[0].Checksum)
	assert.Len(t, docs[1].Checksum, 64)
	assert.Len(t, mfs.Paths(), 2, "Prepare must not write anything")
}

func TestPrepare_MissingTemplate(t *testing.T) {
	b, mfs := newTestBinder()
	mfs.AddFile("templates/agent-rules.md.template", "<!-- RULES_INDEX -->")

	_, err := b.Prepare(targets())
	require.Error(t, err)
	assert.ErrorIs(t, err, rulesync.ErrTemplateNotFound)

	var notFound *rulesync.TemplateNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "/p/templates/README.md.template", notFound.Path)
}

func TestPrepare_ReadError(t *testing.T) {
	b, mfs := newTestBinder()
	addTemplates(mfs)
	mfs.SetReadError("templates/README.md.template", errors.New("permission denied"))

	_, err := b.Prepare(targets())
	require.Error(t, err)
	assert.NotErrorIs(t, err, rulesync.ErrTemplateNotFound)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestCommit_WritesAllOutputs(t *testing.T) {
	b, mfs := newTestBinder()
	addTemplates(mfs)
	mfs.AddFile("README.md", "stale")

	docs, err := b.Prepare(targets())
	require.NoError(t, err)
	require.NoError(t, b.Commit(docs))

	readme, ok := mfs.Content("README.md")
	require.True(t, ok)
	assert.Equal(t, "# Rules\n\n### Style\n\nFooter\n", readme)

	index, ok := mfs.Content("agent-rules.md")
	require.True(t, ok)
	assert.Equal(t, "# Index\n\n| Rule Domain |\n", index)

	for _, p := range mfs.Paths() {
		assert.False(t, strings.HasSuffix(p, ".tmp"), "staged file left behind: %s", p)
	}
}

func TestCommit_StagingFailureLeavesOutputsUntouched(t *testing.T) {
	b, mfs := newTestBinder()
	addTemplates(mfs)
	mfs.AddFile("README.md", "old readme")
	mfs.AddFile("agent-rules.md", "old index")

	docs, err := b.Prepare(targets())
	require.NoError(t, err)

	mfs.FailWrites(func(p string) error {
		if strings.Contains(p, "/.agent-rules.md.") {
			return errors.New("disk full")
		}
		return nil
	})

	err = b.Commit(docs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	readme, _ := mfs.Content("README.md")
	index, _ := mfs.Content("agent-rules.md")
	assert.Equal(t, "old readme", readme)
	assert.Equal(t, "old index", index)
	for _, p := range mfs.Paths() {
		assert.False(t, strings.HasSuffix(p, ".tmp"), "staged file left behind: %s", p)
	}
}

func TestCommit_RenameFailureCleansUp(t *testing.T) {
	b, mfs := newTestBinder()
	addTemplates(mfs)

	docs, err := b.Prepare(targets())
	require.NoError(t, err)

	mfs.FailWrites(func(p string) error {
		if p == "/p/agent-rules.md" {
			return errors.New("read-only")
		}
		return nil
	})

	err = b.Commit(docs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 outputs already updated")
	for _, p := range mfs.Paths() {
		assert.False(t, strings.HasSuffix(p, ".tmp"), "staged file left behind: %s", p)
	}
}

func TestStale(t *testing.T) {
	b, mfs := newTestBinder()
	addTemplates(mfs)

	docs, err := b.Prepare(targets())
	require.NoError(t, err)

	stale, err := b.Stale(docs)
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/README.md", "/p/agent-rules.md"}, stale, "missing outputs are stale")

	require.NoError(t, b.Commit(docs))
	stale, err = b.Stale(docs)
	require.NoError(t, err)
	assert.Empty(t, stale)

	mfs.AddFile("agent-rules.md", "# Index\r\n\r\n| Rule Domain |\r\n")
	stale, err = b.Stale(docs)
	require.NoError(t, err)
	assert.Empty(t, stale, "line endings alone do not make an output stale")

	mfs.AddFile("README.md", "edited by hand")
	stale, err = b.Stale(docs)
	require.NoError(t, err)
	assert.Equal(t, []string{"/p/README.md"}, stale)
}

func TestStagePath(t *testing.T) {
	a := stagePath("/p/README.md")
	c := stagePath("/p/README.md")

	assert.True(t, strings.HasPrefix(a, "/p/.README.md."))
	assert.True(t, strings.HasSuffix(a, ".tmp"))
	assert.NotEqual(t, a, c)
}
