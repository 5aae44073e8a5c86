package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formtemplate/internal/storage"
	"github.com/goliatone/go-formtemplate/pkg/template"
)

func sampleDoc() *template.Template {
	return &template.Template{
		Title: template.LocalizedText{EN: "Oil Check", AR: "فحص الزيت"},
		Sections: []template.Section{
			{ID: "section_1", Label: template.LocalizedText{EN: "Fryers", AR: "المقالي"}},
		},
	}
}

func TestMemoryCreateAssignsID(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()

	created, err := store.Create(ctx, sampleDoc())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Oil Check", got.Title.EN)
}

func TestMemoryGetUnknown(t *testing.T) {
	store := storage.NewMemory()
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryUpdate(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()

	created, err := store.Create(ctx, sampleDoc())
	require.NoError(t, err)

	created.Title.EN = "Weekly Oil Check"
	updated, err := store.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Weekly Oil Check", updated.Title.EN)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekly Oil Check", got.Title.EN)
}

func TestMemoryUpdateUnknown(t *testing.T) {
	store := storage.NewMemory()
	doc := sampleDoc()
	doc.ID = "missing"
	_, err := store.Update(context.Background(), doc)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryDelete(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()

	created, err := store.Create(ctx, sampleDoc())
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, created.ID))

	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, created.ID), storage.ErrNotFound)
}

func TestMemoryList(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, sampleDoc())
		require.NoError(t, err)
	}
	docs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestMemoryReturnsCopies(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()

	created, err := store.Create(ctx, sampleDoc())
	require.NoError(t, err)

	created.Title.EN = "mutated"
	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oil Check", got.Title.EN, "store must not alias caller documents")

	got.Sections[0].Label.EN = "mutated"
	again, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fryers", again.Sections[0].Label.EN)
}
