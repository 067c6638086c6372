package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/boot/internal/core/domain"
)

type sample struct{}

func TestIdentity_Equality(t *testing.T) {
	a := domain.NewIdentity("db.Pool")
	b := domain.NewIdentity("db.Pool")
	c := domain.NewIdentity("db.Conn")

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "db.Pool", a.String())
}

func TestIdentity_Zero(t *testing.T) {
	var zero domain.Identity
	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
	assert.False(t, domain.NewIdentity("x").IsZero())
}

func TestIdentityOf(t *testing.T) {
	assert.Equal(t, "*domain_test.sample", domain.IdentityOf[*sample]().String())
	assert.Equal(t, domain.IdentityOf[*sample](), domain.IdentityOf[*sample]())
	assert.NotEqual(t, domain.IdentityOf[sample](), domain.IdentityOf[*sample]())
}

func TestIdentity_Text(t *testing.T) {
	in := domain.NewIdentity("cache.Store")
	text, err := in.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "cache.Store", string(text))

	var out domain.Identity
	require.NoError(t, out.UnmarshalText(text))
	assert.Equal(t, in, out)

	require.NoError(t, out.UnmarshalText(nil))
	assert.True(t, out.IsZero())
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, domain.Names([]domain.Identity{
		domain.NewIdentity("a"), domain.NewIdentity("b"), {},
	}))
	assert.Empty(t, domain.Names(nil))
}
