package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type Base struct {
	ID string `json:"id" validate:"uuid"`
}

type Signup struct {
	Base
	Name   string `json:"name" validate:"required;minLength:2;maxLength:50"`
	Email  string `json:"email" validate:"required;email" message:"enter a valid email"`
	Age    int    `json:"age" validate:"range:18,120"`
	Tags   string `json:"tags" validate:"pattern:^[a-z]+(;[a-z]+)*$"`
	Plan   string `json:"plan" validate:"oneOf:free,pro"`
	Secret string `json:"-" validate:"required"`
	Note   string `json:"note"`
	Skip   string `json:"skip" validate:"-"`
}

func TestRegisterStruct(t *testing.T) {
	reg := validator.NewRegistry()
	require.NoError(t, validator.RegisterStruct[Signup](reg))

	target := validator.TypeName[Signup]()

	t.Run("rules in tag order", func(t *testing.T) {
		rules := reg.GetRules(target, "name")
		require.Len(t, rules, 3)
		assert.Equal(t, validator.KindRequired, rules[0].Kind)
		assert.Equal(t, 2, rules[1].Length)
		assert.Equal(t, 50, rules[2].Length)
	})

	t.Run("parameters", func(t *testing.T) {
		age := reg.GetRules(target, "age")
		require.Len(t, age, 1)
		assert.Equal(t, 18.0, age[0].Min)
		assert.Equal(t, 120.0, age[0].Max)

		tags := reg.GetRules(target, "tags")
		require.Len(t, tags, 1)
		assert.Equal(t, "^[a-z]+(;[a-z]+)*$", tags[0].Pattern.String())

		plan := reg.GetRules(target, "plan")
		require.Len(t, plan, 1)
		assert.Equal(t, validator.Kind("oneOf"), plan[0].Kind)
		assert.Equal(t, []string{"free", "pro"}, plan[0].Args)
	})

	t.Run("message tag applies to every rule", func(t *testing.T) {
		for _, r := range reg.GetRules(target, "email") {
			assert.Equal(t, "enter a valid email", r.Message)
		}
	})

	t.Run("embedded struct becomes an ancestor", func(t *testing.T) {
		assert.Equal(t, []string{validator.TypeName[Base]()}, reg.Ancestors(target))
		assert.Len(t, reg.GetRules(target, "id"), 1)
		assert.Empty(t, reg.GetOwnRules(target, "id"))
	})

	t.Run("skipped fields", func(t *testing.T) {
		assert.Equal(t, []string{"id", "name", "email", "age", "tags", "plan"}, reg.Properties(target))
	})

	t.Run("second registration is a no-op", func(t *testing.T) {
		require.NoError(t, validator.RegisterStruct[Signup](reg))
		require.NoError(t, validator.RegisterStruct[*Signup](reg))
		assert.Len(t, reg.GetRules(target, "name"), 3)
	})

	t.Run("validates tagged struct", func(t *testing.T) {
		v := validator.New(validator.WithRegistry(reg))

		valid := Signup{
			Base:  Base{ID: "123e4567-e89b-12d3-a456-426614174000"},
			Name:  "Al",
			Email: "a@b.co",
			Age:   30,
			Tags:  "go;yaml",
		}
		assert.True(t, v.Validate(valid).Valid)

		invalid := valid
		invalid.ID = "nope"
		invalid.Email = "bad"
		invalid.Age = 10
		invalid.Tags = "Go"

		res := v.Validate(invalid)
		assert.Equal(t, []string{"id", "email", "age", "tags"}, res.Errors.Fields())
		assert.Equal(t, []string{"enter a valid email"}, res.Errors.Get("email"))
	})
}

type badLength struct {
	Name string `validate:"minLength:x"`
}

type badRange struct {
	Age int `validate:"range:1"`
}

type badBounds struct {
	Age int `validate:"range:a,b"`
}

type badPattern struct {
	Code string `validate:"pattern:["`
}

type badParam struct {
	Email string `validate:"email:strict"`
}

type emptyName struct {
	Value string `validate:":5"`
}

type withBadParent struct {
	badLength
	Name string `validate:"required"`
}

func TestRegisterStruct_Errors(t *testing.T) {
	reg := validator.NewRegistry()

	assert.ErrorIs(t, validator.RegisterStruct[badLength](reg), validator.ErrInvalidTag)
	assert.ErrorIs(t, validator.RegisterStruct[badRange](reg), validator.ErrInvalidTag)
	assert.ErrorIs(t, validator.RegisterStruct[badBounds](reg), validator.ErrInvalidTag)
	assert.ErrorIs(t, validator.RegisterStruct[badParam](reg), validator.ErrInvalidTag)
	assert.ErrorIs(t, validator.RegisterStruct[emptyName](reg), validator.ErrInvalidTag)
	assert.ErrorIs(t, validator.RegisterStruct[int](reg), validator.ErrNotStruct)

	err := validator.RegisterStruct[badPattern](reg)
	assert.ErrorIs(t, err, validator.ErrInvalidTag)
	assert.ErrorIs(t, err, validator.ErrInvalidPattern)

	t.Run("failed parent leaves child unregistered", func(t *testing.T) {
		require.Error(t, validator.RegisterStruct[withBadParent](reg))
		assert.Empty(t, reg.GetRules(validator.TypeName[withBadParent](), "Name"))
	})

	t.Run("failed registration can be retried", func(t *testing.T) {
		require.Error(t, validator.RegisterStruct[badLength](reg))
	})

	t.Run("must variant panics", func(t *testing.T) {
		assert.Panics(t, func() { validator.MustRegisterStruct[badRange](reg) })
		assert.NotPanics(t, func() { validator.MustRegisterStruct[Base](reg) })
	})
}
