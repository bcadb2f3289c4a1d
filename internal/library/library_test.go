package library

import (
	"encoding/json"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christopherklint97/jetlagr/internal/optimizer"
	"github.com/christopherklint97/jetlagr/internal/store"
	"github.com/christopherklint97/jetlagr/internal/trip"
)

func sample(t *testing.T, id string) (trip.Trip, *optimizer.Plan) {
	t.Helper()
	tr, ok := trip.Sample(id)
	require.True(t, ok)
	o := optimizer.New(zerolog.Nop())
	o.Now = func() time.Time { return time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC) }
	plan, err := o.Generate(tr)
	require.NoError(t, err)
	return tr, plan
}

func newLibrary(kv store.KV, at time.Time) *Library {
	l := New(kv, zerolog.Nop())
	l.now = func() time.Time { return at }
	return l
}

func ids(saved []SavedTrip) []string {
	var out []string
	for _, s := range saved {
		out = append(out, s.Trip.ID)
	}
	return out
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	l := newLibrary(store.NewMemory(), time.Date(2024, 10, 2, 8, 0, 0, 0, time.UTC))
	tr, plan := sample(t, "example-a-eastward")

	_, err := l.Save(tr, plan)
	require.NoError(t, err)

	got, err := l.Get(tr.ID)
	require.NoError(t, err)
	assert.Equal(t, tr, got.Trip)
	assert.Empty(t, cmp.Diff(plan, got.Plan))
	assert.True(t, got.SavedAt.Equal(time.Date(2024, 10, 2, 8, 0, 0, 0, time.UTC)))
}

func TestSaveReplacesInPlace(t *testing.T) {
	kv := store.NewMemory()
	first := newLibrary(kv, time.Date(2024, 10, 2, 8, 0, 0, 0, time.UTC))

	a, planA := sample(t, "example-a-eastward")
	b, planB := sample(t, "example-b-westward")
	_, err := first.Save(a, planA)
	require.NoError(t, err)
	_, err = first.Save(b, planB)
	require.NoError(t, err)

	later := newLibrary(kv, time.Date(2024, 10, 3, 8, 0, 0, 0, time.UTC))
	a.Name = "Tokyo, rescheduled"
	_, err = later.Save(a, planA)
	require.NoError(t, err)

	saved, err := later.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"example-a-eastward", "example-b-westward"}, ids(saved))
	assert.Equal(t, "Tokyo, rescheduled", saved[0].Trip.Name)
	assert.Equal(t, 3, saved[0].SavedAt.Day())
}

func TestListSkipsUnreadableEntries(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Upsert("broken", []byte("{not json")))
	l := newLibrary(kv, time.Now())

	tr, plan := sample(t, "example-c-short-hop")
	_, err := l.Save(tr, plan)
	require.NoError(t, err)

	saved, err := l.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"example-c-short-hop"}, ids(saved))

	_, err = l.Get("broken")
	assert.Error(t, err)
}

func TestDeleteAndIsSaved(t *testing.T) {
	l := newLibrary(store.NewMemory(), time.Now())
	tr, plan := sample(t, "example-d-multi-leg")

	ok, err := l.IsSaved(tr.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = l.Save(tr, plan)
	require.NoError(t, err)
	ok, err = l.IsSaved(tr.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, l.Delete(tr.ID))
	assert.ErrorIs(t, l.Delete(tr.ID), ErrNotFound)
	_, err = l.Get(tr.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveRequiresIDAndPlan(t *testing.T) {
	l := newLibrary(store.NewMemory(), time.Now())
	tr, plan := sample(t, "example-a-eastward")

	_, err := l.Save(tr, nil)
	assert.Error(t, err)
	tr.ID = ""
	_, err = l.Save(tr, plan)
	assert.Error(t, err)
}

func TestSaveRejectsAnotherTripsPlan(t *testing.T) {
	l := newLibrary(store.NewMemory(), time.Now())
	a, _ := sample(t, "example-a-eastward")
	_, planB := sample(t, "example-b-westward")

	_, err := l.Save(a, planB)
	assert.ErrorContains(t, err, "belongs to trip")

	ok, err := l.IsSaved(a.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnknownPlanContentIsRejected(t *testing.T) {
	kv := store.NewMemory()
	l := newLibrary(kv, time.Now())

	tr, plan := sample(t, "example-a-eastward")
	bad := *plan
	bad.ShiftStrategy = "sideways"
	data, err := json.Marshal(SavedTrip{Trip: tr, Plan: &bad})
	require.NoError(t, err)
	require.NoError(t, kv.Upsert(tr.ID, data))

	other, otherPlan := sample(t, "example-c-short-hop")
	_, err = l.Save(other, otherPlan)
	require.NoError(t, err)

	_, err = l.Get(tr.ID)
	assert.ErrorContains(t, err, "sideways")

	saved, err := l.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"example-c-short-hop"}, ids(saved))
}
