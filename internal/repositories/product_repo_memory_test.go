package repositories_test

import (
	"context"
	"testing"

	"produtos/internal/models"
	"produtos/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProductRepository_Lifecycle(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	ctx := context.Background()

	a := &models.Product{Imagem: "a", Nome: "a", Valor: 1, Descricao: "a"}
	b := &models.Product{Imagem: "b", Nome: "b", Valor: 2, Descricao: "b"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Product{*a, *b}, all)

	updated, err := repo.Update(ctx, a.ID, models.ProductUpdate{Descricao: strPtr("nova")})
	require.NoError(t, err)
	assert.Equal(t, "nova", updated.Descricao)
	assert.Equal(t, "a", updated.Nome)

	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), repositories.ErrProductNotFound)

	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	_, err = repo.Update(ctx, a.ID, models.ProductUpdate{})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}
