package accounts

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/hashkeeper/internal/common"
	"github.com/dmitrijs2005/hashkeeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAccount(name string) *models.Account {
	return &models.Account{
		Name:        name,
		Description: "desc " + name,
		User:        "alice",
		URL:         "https://" + name + ".example",
		Anchor1:     48213977,
		Anchor2:     90577321,
		N:           8,
		Suffix:      "!A",
	}
}

// testRepository runs the behaviour every Repository must share.
func testRepository(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Run("empty store lists nothing", func(t *testing.T) {
		r := newRepo(t)
		got, err := r.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("create then get round trip", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		want := sampleAccount("bank")

		require.NoError(t, r.Create(ctx, want))

		got, err := r.GetByName(ctx, "bank")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("names match case-insensitively", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		require.NoError(t, r.Create(ctx, sampleAccount("Bank")))

		got, err := r.GetByName(ctx, "BANK")
		require.NoError(t, err)
		assert.Equal(t, "Bank", got.Name)

		err = r.Create(ctx, sampleAccount("bank"))
		require.ErrorIs(t, err, common.ErrDuplicateAccount)
	})

	t.Run("duplicate create leaves store unchanged", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		require.NoError(t, r.Create(ctx, sampleAccount("bank")))
		before, err := r.List(ctx)
		require.NoError(t, err)

		dup := sampleAccount("bank")
		dup.User = "mallory"
		require.ErrorIs(t, r.Create(ctx, dup), common.ErrDuplicateAccount)

		after, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("invalid account is rejected", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		bad := sampleAccount("bank")
		bad.N = 0
		require.ErrorIs(t, r.Create(ctx, bad), common.ErrInvalidInput)

		bad = sampleAccount("bank")
		bad.Anchor1 = 100000000
		require.ErrorIs(t, r.Create(ctx, bad), common.ErrInvalidInput)

		got, err := r.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("list is sorted by name", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		for _, n := range []string{"mail", "bank", "work"} {
			require.NoError(t, r.Create(ctx, sampleAccount(n)))
		}
		got, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"bank", "mail", "work"},
			[]string{got[0].Name, got[1].Name, got[2].Name})
	})

	t.Run("update replaces the whole record", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		require.NoError(t, r.Create(ctx, sampleAccount("bank")))

		upd := sampleAccount("bank")
		upd.User = "bob"
		upd.Suffix = ""
		require.NoError(t, r.Update(ctx, upd))

		got, err := r.GetByName(ctx, "bank")
		require.NoError(t, err)
		assert.Equal(t, upd, got)
	})

	t.Run("update is idempotent", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		require.NoError(t, r.Create(ctx, sampleAccount("bank")))
		require.NoError(t, r.Create(ctx, sampleAccount("mail")))

		upd := sampleAccount("bank")
		upd.URL = "https://new.example"
		require.NoError(t, r.Update(ctx, upd))
		once, err := r.List(ctx)
		require.NoError(t, err)

		require.NoError(t, r.Update(ctx, upd))
		twice, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("update of missing account", func(t *testing.T) {
		r := newRepo(t)
		err := r.Update(context.Background(), sampleAccount("ghost"))
		require.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("rename moves the record", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		require.NoError(t, r.Create(ctx, sampleAccount("bank")))

		renamed := sampleAccount("savings")
		require.NoError(t, r.Rename(ctx, "bank", renamed))

		_, err := r.GetByName(ctx, "bank")
		require.ErrorIs(t, err, common.ErrorNotFound)
		got, err := r.GetByName(ctx, "savings")
		require.NoError(t, err)
		assert.Equal(t, renamed, got)
	})

	t.Run("rename changing only case", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		require.NoError(t, r.Create(ctx, sampleAccount("bank")))

		require.NoError(t, r.Rename(ctx, "bank", sampleAccount("Bank")))

		got, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Bank", got[0].Name)
	})

	t.Run("rename onto an existing name", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		require.NoError(t, r.Create(ctx, sampleAccount("bank")))
		require.NoError(t, r.Create(ctx, sampleAccount("mail")))
		before, err := r.List(ctx)
		require.NoError(t, err)

		err = r.Rename(ctx, "bank", sampleAccount("MAIL"))
		require.ErrorIs(t, err, common.ErrDuplicateAccount)

		after, err := r.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("rename of missing account", func(t *testing.T) {
		r := newRepo(t)
		err := r.Rename(context.Background(), "ghost", sampleAccount("other"))
		require.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("delete then get", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()
		require.NoError(t, r.Create(ctx, sampleAccount("bank")))
		require.NoError(t, r.Create(ctx, sampleAccount("mail")))

		require.NoError(t, r.Delete(ctx, "BANK"))

		_, err := r.GetByName(ctx, "bank")
		require.ErrorIs(t, err, common.ErrorNotFound)
		got, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "mail", got[0].Name)

		require.ErrorIs(t, r.Delete(ctx, "bank"), common.ErrorNotFound)
	})

	t.Run("get missing account", func(t *testing.T) {
		r := newRepo(t)
		_, err := r.GetByName(context.Background(), "ghost")
		require.ErrorIs(t, err, common.ErrorNotFound)
	})
}
