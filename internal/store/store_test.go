package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqadmin/internal/domain"
)

func TestReplaceKeepsServerOrder(t *testing.T) {
	s := NewMemoryRequestStore()
	s.Replace([]domain.Request{{ID: "3"}, {ID: "1"}, {ID: "2"}})

	assert.Equal(t, []string{"3", "1", "2"}, s.IDs())
	assert.Equal(t, 3, s.Len())
}

func TestReplaceDropsDuplicates(t *testing.T) {
	s := NewMemoryRequestStore()
	s.Replace([]domain.Request{{ID: "1", Email: "a@x"}, {ID: "1", Email: "b@x"}, {ID: "2"}})

	assert.Equal(t, []string{"1", "2"}, s.IDs())
	r, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "a@x", r.Email)
}

func TestReplaceDiscardsPreviousListing(t *testing.T) {
	s := NewMemoryRequestStore()
	s.Replace([]domain.Request{{ID: "1"}})
	s.Replace([]domain.Request{{ID: "2"}})

	_, ok := s.Get("1")
	assert.False(t, ok)
	assert.Equal(t, []string{"2"}, s.IDs())
}

func TestAllReturnsCopy(t *testing.T) {
	s := NewMemoryRequestStore()
	s.Replace([]domain.Request{{ID: "1", Email: "a@x"}})

	all := s.All()
	all[0].Email = "changed"

	r, _ := s.Get("1")
	assert.Equal(t, "a@x", r.Email)
}

func TestConcurrentAccess(t *testing.T) {
	s := NewMemoryRequestStore()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Replace([]domain.Request{{ID: "1"}, {ID: "2"}})
		}()
		go func() {
			defer wg.Done()
			_ = s.IDs()
			_ = s.Len()
		}()
	}
	wg.Wait()
	assert.Equal(t, 2, s.Len())
}
