package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory_GetMissingKey(t *testing.T) {
	st := NewMemory()

	var v []string
	found, err := st.Get("nope", &v)
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemory_SetGetRoundTrip(t *testing.T) {
	st := NewMemory()

	require.NoError(t, st.Set("k", []int{1, 2, 3}))

	var v []int
	found, err := st.Get("k", &v)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []int{1, 2, 3}, v)
}

func TestMemory_UpdateCommitsAllWrites(t *testing.T) {
	st := NewMemory()

	err := st.Update(func(tx Tx) error {
		if err := tx.Set("a", 1); err != nil {
			return err
		}
		return tx.Set("b", 2)
	})
	require.NoError(t, err)

	var a, b int
	found, _ := st.Get("a", &a)
	require.True(t, found)
	found, _ = st.Get("b", &b)
	require.True(t, found)
}

func TestMemory_UpdateRollsBackOnError(t *testing.T) {
	st := NewMemory()
	require.NoError(t, st.Set("keep", "before"))

	boom := errors.New("boom")
	err := st.Update(func(tx Tx) error {
		if err := tx.Set("keep", "after"); err != nil {
			return err
		}
		if err := tx.Set("new", 1); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var s string
	found, _ := st.Get("keep", &s)
	require.True(t, found)
	require.Equal(t, "before", s)

	var n int
	found, _ = st.Get("new", &n)
	require.False(t, found)
}

func TestMemory_CorruptBlobReportsError(t *testing.T) {
	st := NewMemory()
	st.data["bad"] = []byte("{not json")

	var v []int
	found, err := st.Get("bad", &v)
	require.True(t, found)
	require.Error(t, err)
}

func TestMemory_Remove(t *testing.T) {
	st := NewMemory()
	require.NoError(t, st.Set("k", 1))
	require.NoError(t, st.Remove("k"))

	var v int
	found, err := st.Get("k", &v)
	require.NoError(t, err)
	require.False(t, found)
}
