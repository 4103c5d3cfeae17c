package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_AddAssignsSequentialIDs(t *testing.T) {
	var l List
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	for want := 1; want <= 5; want++ {
		before := l.NextID()
		e := l.Add("item", 1, at)
		assert.Equal(t, want, e.ID)
		assert.Equal(t, before, e.ID)
	}

	seen := map[int]bool{}
	for _, e := range l {
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
}

func TestList_AddStampsUTC(t *testing.T) {
	var l List
	loc := time.FixedZone("UTC+2", 2*60*60)

	e := l.Add("Coffee", 4.5, time.Date(2026, 1, 1, 1, 0, 0, 0, loc))

	assert.Equal(t, time.UTC, e.Date.Location())
	assert.Equal(t, 2025, e.Date.Year())
	assert.Equal(t, time.December, e.Date.Month())
}

func TestList_DeletedIDIsNotRecycled(t *testing.T) {
	var l List
	at := time.Now()
	l.Add("a", 1, at)
	l.Add("b", 2, at)
	l.Add("c", 3, at)

	require.True(t, l.Remove(2))
	e := l.Add("d", 4, at)
	assert.Equal(t, 4, e.ID)

	require.True(t, l.Remove(4))
	e = l.Add("e", 5, at)
	// 4 comes back only because it is max+1 again
	assert.Equal(t, 4, e.ID)
}

func TestList_FindMutatesInPlace(t *testing.T) {
	l := List{{ID: 1, Amount: 4.5}, {ID: 2, Amount: 12}}

	e, ok := l.Find(1)
	require.True(t, ok)
	e.Amount = 5

	assert.Equal(t, 5.0, l[0].Amount)

	_, ok = l.Find(99)
	assert.False(t, ok)
}

func TestList_RemoveKeepsOrder(t *testing.T) {
	l := List{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.True(t, l.Remove(2))
	assert.False(t, l.Remove(2))
	require.Len(t, l, 2)
	assert.Equal(t, 1, l[0].ID)
	assert.Equal(t, 3, l[1].ID)
}

func TestList_Clone(t *testing.T) {
	l := List{{ID: 1, Amount: 1}}
	c := l.Clone()
	c[0].Amount = 2
	c.Add("x", 3, time.Now())

	assert.Equal(t, 1.0, l[0].Amount)
	assert.Len(t, l, 1)
	assert.Nil(t, List(nil).Clone())
}

func TestList_Filter(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	l := List{
		{ID: 1, Description: "this march", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Description: "last march", Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Description: "april", Date: time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)},
	}

	t.Run("no month returns all in order", func(t *testing.T) {
		all := l.Filter("", now)
		require.Len(t, all, 3)
		for i := range l {
			assert.Equal(t, l[i].ID, all[i].ID)
		}
	})

	t.Run("month excludes other years", func(t *testing.T) {
		march := l.Filter("March", now)
		require.Len(t, march, 1)
		assert.Equal(t, 1, march[0].ID)
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Len(t, l.Filter("aPRIL", now), 1)
	})

	t.Run("no match is empty", func(t *testing.T) {
		assert.Empty(t, l.Filter("July", now))
		assert.Empty(t, l.Filter("Mar", now))
	})

	t.Run("does not mutate", func(t *testing.T) {
		out := l.Filter("", now)
		out[0].Amount = 100
		assert.Equal(t, 0.0, l[0].Amount)
	})
}

func TestTotal(t *testing.T) {
	assert.Equal(t, "17", Total([]Expense{{Amount: 5}, {Amount: 12}}).String())
	assert.Equal(t, "0.3", Total([]Expense{{Amount: 0.1}, {Amount: 0.2}}).String())
	assert.True(t, Total(nil).IsZero())
}
