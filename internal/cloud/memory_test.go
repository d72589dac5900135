package cloud

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededMemoryStoreTree(t *testing.T) {
	s := SeededMemoryStore()
	ctx := context.Background()

	root, err := s.ListChildren(ctx, BaseFolder)
	require.NoError(t, err)

	var names []string
	for _, it := range root {
		assert.True(t, it.IsFolder)
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"Generated", "PDFs", "Templates"}, names)

	generated, err := s.ListChildren(ctx, GeneratedFolder)
	require.NoError(t, err)
	assert.Len(t, generated, 8)
}

func TestMemoryStoreUploadAndList(t *testing.T) {
	s := SeededMemoryStore()
	ctx := context.Background()

	folder := PDFFolder + "/General"
	id, err := s.Upload(ctx, "General_Petition_abc.pdf", []byte("%PDF fake"), folder)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	items, err := s.ListChildren(ctx, folder)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "General_Petition_abc.pdf", items[0].Name)
	assert.Equal(t, "pdf", items[0].FileExtension)
	assert.EqualValues(t, 9, items[0].SizeBytes)
	assert.False(t, items[0].IsFolder)
}

func TestMemoryStoreUploadUnknownFolder(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Upload(context.Background(), "x.pdf", []byte("x"), "nowhere")
	assert.Error(t, err)
}

func TestMemoryStoreCreateFolderRequiresParent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.Error(t, s.CreateFolder(ctx, "child", "missing/parent"))

	require.NoError(t, s.CreateFolder(ctx, "root", ""))
	assert.NoError(t, s.CreateFolder(ctx, "child", "root"))
	// Idempotent re-creation.
	assert.NoError(t, s.CreateFolder(ctx, "child", "root"))
}
