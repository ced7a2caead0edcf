package metadata_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/metadata"
)

func TestStore_DefineAndGet(t *testing.T) {
	t.Run("returns own value", func(t *testing.T) {
		s := metadata.New()
		s.Define("role", "admin", "app.User", "name")

		v, ok := s.Get("role", "app.User", "name")
		require.True(t, ok)
		assert.Equal(t, "admin", v)

		v, ok = s.GetOwn("role", "app.User", "name")
		require.True(t, ok)
		assert.Equal(t, "admin", v)
	})

	t.Run("replaces value on redefine", func(t *testing.T) {
		s := metadata.New()
		s.Define("role", "admin", "app.User", "name")
		s.Define("role", "owner", "app.User", "name")

		v, _ := s.Get("role", "app.User", "name")
		assert.Equal(t, "owner", v)
		assert.Equal(t, []string{"role"}, s.OwnKeys("app.User", "name"))
	})

	t.Run("missing key", func(t *testing.T) {
		s := metadata.New()
		_, ok := s.Get("role", "app.User", "name")
		assert.False(t, ok)
		assert.False(t, s.Has("role", "app.User", "name"))
	})

	t.Run("class level metadata uses empty property", func(t *testing.T) {
		s := metadata.New()
		s.Define("table", "users", "app.User", "")

		v, ok := s.Get("table", "app.User", "")
		require.True(t, ok)
		assert.Equal(t, "users", v)
		assert.Empty(t, s.OwnProperties("app.User"))
	})
}

func TestStore_Inheritance(t *testing.T) {
	s := metadata.New()
	s.Define("label", "Identifier", "app.Entity", "id")
	s.Define("label", "Email", "app.User", "email")
	s.Extend("app.User", "app.Entity")

	t.Run("derived sees ancestor value", func(t *testing.T) {
		v, ok := s.Get("label", "app.User", "id")
		require.True(t, ok)
		assert.Equal(t, "Identifier", v)
		assert.True(t, s.Has("label", "app.User", "id"))
	})

	t.Run("own lookup ignores ancestors", func(t *testing.T) {
		_, ok := s.GetOwn("label", "app.User", "id")
		assert.False(t, ok)
		assert.False(t, s.HasOwn("label", "app.User", "id"))
	})

	t.Run("own value shadows ancestor", func(t *testing.T) {
		s := metadata.New()
		s.Define("label", "base", "app.Entity", "id")
		s.Define("label", "derived", "app.User", "id")
		s.Extend("app.User", "app.Entity")

		v, _ := s.Get("label", "app.User", "id")
		assert.Equal(t, "derived", v)
	})

	t.Run("collect returns root first", func(t *testing.T) {
		s := metadata.New()
		s.Define("label", "root", "app.Entity", "id")
		s.Define("label", "middle", "app.User", "id")
		s.Define("label", "leaf", "app.Admin", "id")
		s.Extend("app.User", "app.Entity")
		s.Extend("app.Admin", "app.User")

		assert.Equal(t, []any{"root", "middle", "leaf"}, s.Collect("label", "app.Admin", "id"))
		assert.Equal(t, []string{"app.User", "app.Entity"}, s.Ancestors("app.Admin"))
	})

	t.Run("properties include ancestors", func(t *testing.T) {
		assert.Equal(t, []string{"id", "email"}, s.Properties("app.User"))
		assert.Equal(t, []string{"email"}, s.OwnProperties("app.User"))
	})
}

func TestStore_Extend(t *testing.T) {
	t.Run("ignores self and duplicates", func(t *testing.T) {
		s := metadata.New()
		s.Extend("a", "a", "b", "b", "")
		assert.Equal(t, []string{"b"}, s.Parents("a"))
	})

	t.Run("tolerates cycles", func(t *testing.T) {
		s := metadata.New()
		s.Extend("a", "b")
		s.Extend("b", "a")
		s.Define("k", 1, "b", "p")

		assert.Equal(t, []string{"b"}, s.Ancestors("a"))
		v, ok := s.Get("k", "a", "p")
		require.True(t, ok)
		assert.Equal(t, 1, v)
	})

	t.Run("multiple parents resolve depth first", func(t *testing.T) {
		s := metadata.New()
		s.Extend("c", "a", "b")
		s.Extend("a", "root")
		assert.Equal(t, []string{"a", "root", "b"}, s.Ancestors("c"))
	})
}

func TestStore_Keys(t *testing.T) {
	s := metadata.New()
	s.Define("a", 1, "base", "p")
	s.Define("b", 2, "base", "p")
	s.Define("c", 3, "derived", "p")
	s.Define("a", 4, "derived", "p")
	s.Extend("derived", "base")

	assert.Equal(t, []string{"c", "a"}, s.OwnKeys("derived", "p"))
	assert.Equal(t, []string{"c", "a", "b"}, s.Keys("derived", "p"))
	assert.Nil(t, s.OwnKeys("unknown", "p"))
}

func TestStore_Delete(t *testing.T) {
	s := metadata.New()
	s.Define("a", 1, "base", "p")
	s.Define("a", 2, "derived", "p")
	s.Extend("derived", "base")

	assert.True(t, s.Delete("a", "derived", "p"))
	assert.False(t, s.Delete("a", "derived", "p"))
	assert.False(t, s.Delete("a", "unknown", "p"))

	v, ok := s.Get("a", "derived", "p")
	require.True(t, ok)
	assert.Equal(t, 1, v, "inherited value should remain visible")
	assert.Empty(t, s.OwnKeys("derived", "p"))
}

func TestStore_ConcurrentReads(t *testing.T) {
	s := metadata.New()
	s.Define("k", "v", "t", "p")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, ok := s.Get("k", "t", "p")
			assert.True(t, ok)
			assert.Equal(t, "v", v)
		}()
	}
	wg.Wait()
}
