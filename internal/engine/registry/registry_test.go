package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/boot/internal/core/domain"
	"go.trai.ch/boot/internal/engine/registry"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := registry.New()
	id := domain.NewIdentity("A")

	require.NoError(t, r.Register(id, "a"))
	assert.True(t, r.Has(id))
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	err = r.Register(id, "again")
	require.ErrorIs(t, err, domain.ErrDuplicateDependency)

	got, err = r.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "a", got, "duplicate registration must not replace the instance")
}

func TestRegistry_GetMissing(t *testing.T) {
	r := registry.New()

	_, err := r.Get(domain.NewIdentity("missing"))
	require.ErrorIs(t, err, domain.ErrUnresolvedDependency)
	assert.False(t, r.Has(domain.NewIdentity("missing")))
}

func TestRegistry_Seal(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(domain.NewIdentity("seed"), 1))

	w, err := r.Seal()
	require.NoError(t, err)

	_, err = r.Seal()
	require.ErrorIs(t, err, domain.ErrAlreadyInitialized)

	err = r.Register(domain.NewIdentity("late"), 2)
	require.ErrorIs(t, err, domain.ErrAlreadyInitialized)

	require.NoError(t, w.Put(domain.NewIdentity("B"), 3))
	require.NoError(t, w.Put(domain.NewIdentity("A"), 4))
	require.ErrorIs(t, w.Put(domain.NewIdentity("B"), 5), domain.ErrDuplicateDependency)

	w.Close()
	require.ErrorIs(t, w.Put(domain.NewIdentity("C"), 6), domain.ErrAlreadyInitialized)

	assert.Equal(t, []domain.Identity{
		domain.NewIdentity("seed"),
		domain.NewIdentity("B"),
		domain.NewIdentity("A"),
	}, r.Identities())
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := registry.New()
	w, err := r.Seal()
	require.NoError(t, err)
	for i := range 50 {
		require.NoError(t, w.Put(domain.NewIdentity(fmt.Sprintf("c%d", i)), i))
	}
	w.Close()

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				v, err := r.Get(domain.NewIdentity(fmt.Sprintf("c%d", (i+g)%50)))
				assert.NoError(t, err)
				assert.Equal(t, (i+g)%50, v)
			}
		}()
	}
	wg.Wait()
}
