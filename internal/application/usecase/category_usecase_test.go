package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/usecase"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

type memCategoryRepo struct {
	byID map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{byID: make(map[string]*entity.Category)}
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	for _, existing := range r.byID {
		if existing.Slug == c.Slug {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if c, ok := r.byID[id]; ok && c.DeletedAt == nil {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *memCategoryRepo) GetBySlug(slug string) (*entity.Category, error) {
	for _, c := range r.byID {
		if c.Slug == slug && c.DeletedAt == nil {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.byID {
		if c.DeletedAt == nil {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCategoryRepo) Delete(id string) error {
	if c, ok := r.byID[id]; ok {
		now := c.UpdatedAt
		c.DeletedAt = &now
	}
	return nil
}

func TestCategoryCreate_GeneraSlug(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemCategoryRepo())

	out, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Café y Té"})
	require.NoError(t, err)
	assert.Equal(t, "cafe-y-te", out.Slug)
	assert.NotEmpty(t, out.ID)
}

func TestCategoryCreate_SlugDuplicado_RetornaDuplicate(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemCategoryRepo())

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Lácteos"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Lacteos"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "mismo slug tras quitar tildes")
}

func TestCategoryUpdate_NombreNuevoRegeneraSlug(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	name := "Bebidas Frías"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "bebidas-frias", out.Slug)
}

func TestCategoryGetByID_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemCategoryRepo())

	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete_OcultaDeLecturas(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Snacks"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "soft delete debe ocultar la categoría")
}
