package validator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/metadata"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type Entity struct {
	ID string `json:"id"`
}

type User struct {
	Entity
	Email string `json:"email"`
	Name  string `json:"name"`
}

func TestRegistry_AddRule(t *testing.T) {
	t.Run("keeps declaration order", func(t *testing.T) {
		reg := validator.NewRegistry()
		reg.AddRule("User", "name", validator.Required())
		reg.AddRule("User", "name", validator.MinLength(2))
		reg.AddRule("User", "name", validator.MaxLength(50))

		rules := reg.GetRules("User", "name")
		require.Len(t, rules, 3)
		assert.Equal(t, validator.KindRequired, rules[0].Kind)
		assert.Equal(t, validator.KindMinLength, rules[1].Kind)
		assert.Equal(t, validator.KindMaxLength, rules[2].Kind)
	})

	t.Run("fills default messages", func(t *testing.T) {
		reg := validator.NewRegistry()
		reg.AddRule("User", "name", validator.MinLength(2))
		reg.AddRule("User", "name", validator.Required().WithMessage("who are you?"))

		rules := reg.GetRules("User", "name")
		require.Len(t, rules, 2)
		assert.Equal(t, "name must be at least 2 characters", rules[0].Message)
		assert.Equal(t, "who are you?", rules[1].Message)
	})

	t.Run("unknown pair has no rules", func(t *testing.T) {
		reg := validator.NewRegistry()
		assert.Nil(t, reg.GetRules("User", "name"))
		assert.Nil(t, reg.GetOwnRules("User", "name"))
		assert.Empty(t, reg.Properties("User"))
	})

	t.Run("returned rule sets are snapshots", func(t *testing.T) {
		reg := validator.NewRegistry()
		reg.AddRule("User", "name", validator.Required())
		before := reg.GetRules("User", "name")

		reg.AddRule("User", "name", validator.MinLength(2))
		assert.Len(t, before, 1)
		assert.Len(t, reg.GetRules("User", "name"), 2)
	})
}

func TestRegistry_Inheritance(t *testing.T) {
	reg := validator.NewRegistry()
	reg.AddRule("Entity", "id", validator.Required())
	reg.AddRule("Entity", "name", validator.Required())
	reg.AddRule("User", "name", validator.MinLength(2))
	reg.AddRule("User", "email", validator.Email())
	reg.Extend("User", "Entity")

	t.Run("inherited rules come first", func(t *testing.T) {
		rules := reg.GetRules("User", "name")
		require.Len(t, rules, 2)
		assert.Equal(t, validator.KindRequired, rules[0].Kind)
		assert.Equal(t, validator.KindMinLength, rules[1].Kind)
	})

	t.Run("own rules exclude ancestors", func(t *testing.T) {
		rules := reg.GetOwnRules("User", "name")
		require.Len(t, rules, 1)
		assert.Equal(t, validator.KindMinLength, rules[0].Kind)
		assert.Nil(t, reg.GetOwnRules("User", "id"))
	})

	t.Run("properties include ancestors", func(t *testing.T) {
		assert.Equal(t, []string{"id", "name", "email"}, reg.Properties("User"))
		assert.Equal(t, []string{"Entity"}, reg.Ancestors("User"))
	})

	t.Run("parent is unaffected", func(t *testing.T) {
		assert.Len(t, reg.GetRules("Entity", "name"), 1)
		assert.Nil(t, reg.GetRules("Entity", "email"))
	})

	t.Run("rules map", func(t *testing.T) {
		rules := reg.Rules("User")
		assert.Len(t, rules, 3)
		assert.Len(t, rules["name"], 2)
		assert.Len(t, rules["id"], 1)
	})
}

func TestRegistry_SharedMetadataStore(t *testing.T) {
	store := metadata.New()
	store.Define("ui:label", "Full name", "User", "name")

	reg := validator.NewRegistryWithStore(store)
	reg.AddRule("User", "name", validator.Required())

	assert.Same(t, store, reg.Metadata())
	label, ok := store.GetOwn("ui:label", "User", "name")
	require.True(t, ok)
	assert.Equal(t, "Full name", label)
	assert.ElementsMatch(t, []string{"ui:label", "validation:rules"}, store.OwnKeys("User", "name"))
}

func TestRegister(t *testing.T) {
	reg := validator.NewRegistry()
	validator.Register[Entity](reg).Field("id", validator.Required())
	b := validator.Register[User](reg).
		Field("email", validator.Required(), validator.Email())
	validator.Extend[User, Entity](reg)

	assert.Equal(t, "github.com/dmitrymomot/rulekit/pkg/validator_test.User", b.Target())
	assert.Len(t, reg.GetRules(validator.TypeName[User](), "email"), 2)
	assert.Len(t, reg.GetRules(validator.TypeName[User](), "id"), 1)

	t.Run("builder extends by name", func(t *testing.T) {
		validator.For(reg, "Admin").Extends(validator.TypeName[User]()).Field("role", validator.Required())
		assert.Equal(t, []string{"id", "email", "role"}, reg.Properties("Admin"))
	})
}

type namedDoc struct{ name string }

func (d namedDoc) TypeName() string { return d.name }

func TestTypeNameOf(t *testing.T) {
	assert.Equal(t, validator.TypeName[User](), validator.TypeNameOf(User{}))
	assert.Equal(t, validator.TypeName[User](), validator.TypeNameOf(&User{}))
	assert.Equal(t, "Order", validator.TypeNameOf(namedDoc{name: "Order"}))
	assert.Equal(t, "", validator.TypeNameOf(nil))
	assert.Equal(t, "int", validator.TypeNameOf(1))
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	reg := validator.NewRegistry()
	validator.For(reg, "User").Field("name", validator.Required(), validator.MinLength(2))

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Len(t, reg.GetRules("User", "name"), 2)
			}
		}()
	}
	wg.Wait()
}
