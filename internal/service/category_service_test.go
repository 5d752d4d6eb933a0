package service

import (
	"context"
	"testing"

	"github.com/LandLandeiro/oba-moda-afro/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreate_SlugAndCollision(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, dto.CreateCategoryRequest{Name: "Acessórios"})
	require.NoError(t, err)
	assert.Equal(t, "acessorios", first.Slug)
	assert.Nil(t, first.Warning)

	second, err := svc.Create(ctx, dto.CreateCategoryRequest{Name: "Acessórios"})
	require.NoError(t, err)
	assert.Equal(t, "acessorios-"+second.ID[:8], second.Slug)
	require.NotNil(t, second.Warning)
}

func TestCategoryDelete_BlockedWhileProductsRemain(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateCategoryRequest{Name: "Roupas"})
	require.NoError(t, err)
	c, err := repo.FindBySlug(ctx, created.Slug)
	require.NoError(t, err)

	repo.productCnt[c.ID] = 2
	err = svc.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	repo.productCnt[c.ID] = 0
	require.NoError(t, svc.Delete(ctx, c.ID))
	_, err = repo.FindByID(ctx, c.ID)
	assert.Error(t, err)
}

func TestCategoryUpdate_RenameRegeneratesSlug(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateCategoryRequest{Name: "Roupas"})
	require.NoError(t, err)
	c, _ := repo.FindBySlug(ctx, created.Slug)

	newName := "Vestuário"
	resp, err := svc.Update(ctx, c.ID, dto.UpdateCategoryRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "vestuario", resp.Slug)
}
