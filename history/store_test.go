package history

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.json")
	return NewStore(path, log.New(io.Discard, "", 0)), path
}

func testItem(i int) Item {
	return Item{
		ID:         fmt.Sprintf("id-%d", i),
		CreatedAt:  time.Now(),
		Title:      fmt.Sprintf("Lead %d", i),
		LeadText:   "Lead Name: Someone",
		OutputText: "## 1. Project Overview\nx",
		Model:      "fast",
		Tone:       "professional",
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	s, _ := testStore(t)
	assert.Empty(t, s.Items())
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	s := NewStore(path, log.New(io.Discard, "", 0))
	assert.Empty(t, s.Items())
}

func TestStore_LoadNonArrayPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"x"}`), 0o644))
	s := NewStore(path, log.New(io.Discard, "", 0))
	assert.Empty(t, s.Items())
}

func TestStore_RecordPrependsNewestFirst(t *testing.T) {
	s, _ := testStore(t)
	s.Record(testItem(1))
	s.Record(testItem(2))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "id-2", items[0].ID)
	assert.Equal(t, "id-1", items[1].ID)
}

func TestStore_TruncatesToFifteen(t *testing.T) {
	s, _ := testStore(t)
	for i := 1; i <= 16; i++ {
		s.Record(testItem(i))
	}

	items := s.Items()
	require.Len(t, items, MaxItems)
	assert.Equal(t, "id-16", items[0].ID)
	assert.Equal(t, "id-2", items[len(items)-1].ID)
	// id-1 was the oldest and got evicted
	_, ok := s.Get("id-1")
	assert.False(t, ok)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	s, path := testStore(t)
	s.Record(testItem(1))
	s.Record(testItem(2))

	reopened := NewStore(path, log.New(io.Discard, "", 0))
	items := reopened.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "id-2", items[0].ID)

	// on-disk payload is a plain JSON array
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded []Item
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Len(t, decoded, 2)
}

func TestStore_Get(t *testing.T) {
	s, _ := testStore(t)
	s.Record(testItem(7))

	item, ok := s.Get("id-7")
	require.True(t, ok)
	assert.Equal(t, "Lead 7", item.Title)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestStore_PersistFailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	// a directory at the storage path makes every write fail
	path := filepath.Join(dir, "history.json")
	require.NoError(t, os.MkdirAll(path, 0o755))

	s := NewStore(path, log.New(io.Discard, "", 0))
	s.Record(testItem(1))
	assert.Equal(t, 1, s.Len())
}

func TestNewIDSource(t *testing.T) {
	ids := NewIDSource()
	a := ids.NewID()
	b := ids.NewID()
	assert.NotEmpty(t, a)
	assert.NotEmpty(t, b)
	assert.NotEqual(t, a, b)
}

func TestClockIDSource(t *testing.T) {
	ids := newClockIDSource()
	a := ids.NewID()
	b := ids.NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
