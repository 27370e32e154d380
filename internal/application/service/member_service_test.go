package service

import (
	"context"
	"testing"

	"github.com/avillarama/resto-api/pkg/apperror"
	"github.com/avillarama/resto-api/pkg/pagination"
	"github.com/avillarama/resto-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMember(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns a generated 12-digit identifier", func(t *testing.T) {
		env := newTestEnv(t)

		member, err := env.members.CreateMember(ctx, &CreateMemberInput{
			Name:      "Fely Garcia",
			ContactNo: "0917-123-4567",
		})
		require.NoError(t, err)
		assert.True(t, utils.IsValidMemberID(member.MemberID))
	})

	t.Run("requires name and contact", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.members.CreateMember(ctx, &CreateMemberInput{})
		require.Error(t, err)

		appErr := apperror.GetAppError(err)
		assert.Equal(t, 422, appErr.Code)
		assert.Len(t, appErr.Errors, 2)
	})
}

func TestGetMember(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	member := env.createMember(t, "Gio Herrera")

	t.Run("found", func(t *testing.T) {
		got, err := env.members.GetMember(ctx, member.MemberID)
		require.NoError(t, err)
		assert.Equal(t, "Gio Herrera", got.Name)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := env.members.GetMember(ctx, "not-a-member")
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := env.members.GetMember(ctx, "000000000000")
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestUpdateMember(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	member := env.createMember(t, "Hana Ilagan")

	name := "Hana Ilagan-Cruz"
	updated, err := env.members.UpdateMember(ctx, &UpdateMemberInput{
		ID:   member.MemberID,
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, member.ContactNo, updated.ContactNo)
}

func TestListMembers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.createMember(t, "Ian Jimenez")
	env.createMember(t, "Ivy Jimenez")
	env.createMember(t, "Karl Lim")

	t.Run("search filters by name", func(t *testing.T) {
		result, err := env.members.ListMembers(ctx, pagination.DefaultPagination(), "Jimenez")
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
	})

	t.Run("pagination caps the page", func(t *testing.T) {
		result, err := env.members.ListMembers(ctx, &pagination.PaginationParams{Page: 1, PerPage: 2}, "")
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
		assert.Equal(t, int64(3), result.Pagination.Total)
		assert.True(t, result.Pagination.HasNext)
	})
}

func TestDeleteMember(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	member := env.createMember(t, "Lito Mercado")

	require.NoError(t, env.members.DeleteMember(ctx, member.MemberID))

	_, err := env.members.GetMember(ctx, member.MemberID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
