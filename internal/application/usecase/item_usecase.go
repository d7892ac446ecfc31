// Package usecase contiene los casos de uso CRUD del catálogo.
package usecase

import (
	"context"
	"time"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/application/ports"
	"github.com/ariefstwn/hotelstock-api/internal/domain"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
)

// ItemUseCase casos de uso CRUD para el catálogo. OnHand se maneja vía
// movimientos salvo la corrección directa de PUT; nunca se borra un ítem,
// solo se archiva.
type ItemUseCase struct {
	tx ports.TxRunner
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(tx ports.TxRunner) *ItemUseCase {
	return &ItemUseCase{tx: tx}
}

// Create crea un nuevo ítem en la colección de su tipo.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	switch in.Type {
	case entity.ItemTypeRoom, entity.ItemTypeLaundry:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock.IsNegative() || in.OnHand.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()

	var out *dto.ItemResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		id, err := r.Items.NextID(in.Type)
		if err != nil {
			return err
		}
		item := &entity.InventoryItem{
			ID:         id,
			Type:       in.Type,
			Name:       in.Name,
			Category:   in.Category,
			Size:       in.Size,
			Unit:       in.Unit,
			Mandatory:  in.Mandatory,
			ParPerRoom: in.ParPerRoom,
			MinStock:   in.MinStock,
			MaxStock:   in.MaxStock,
			OnHand:     in.OnHand,
			Status:     entity.ItemStatusActive,
			Vendor:     in.Vendor,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := r.Items.Create(item); err != nil {
			return err
		}
		out = toItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un ítem por id dentro de la colección de su tipo.
func (uc *ItemUseCase) GetByID(ctx context.Context, id, itemType string) (*dto.ItemResponse, error) {
	var out *dto.ItemResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		item, err := r.Items.GetByID(id, itemType)
		if err != nil {
			return err
		}
		out = toItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update actualiza un ítem. Campos nil no se tocan; OnHand negativo se rechaza.
func (uc *ItemUseCase) Update(ctx context.Context, id, itemType string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	var out *dto.ItemResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		item, err := r.Items.GetByID(id, itemType)
		if err != nil {
			return err
		}
		if in.Name != nil {
			item.Name = *in.Name
		}
		if in.Category != nil {
			item.Category = *in.Category
		}
		if in.Size != nil {
			item.Size = *in.Size
		}
		if in.Unit != nil {
			item.Unit = *in.Unit
		}
		if in.Mandatory != nil {
			item.Mandatory = *in.Mandatory
		}
		if in.ParPerRoom != nil {
			item.ParPerRoom = *in.ParPerRoom
		}
		if in.MinStock != nil {
			if in.MinStock.IsNegative() {
				return domain.ErrInvalidInput
			}
			item.MinStock = *in.MinStock
		}
		if in.MaxStock != nil {
			item.MaxStock = in.MaxStock
		}
		if in.OnHand != nil {
			if in.OnHand.IsNegative() {
				return domain.ErrInvalidInput
			}
			item.OnHand = *in.OnHand
		}
		if in.Vendor != nil {
			item.Vendor = *in.Vendor
		}
		item.UpdatedAt = time.Now()
		if err := r.Items.Update(item); err != nil {
			return err
		}
		out = toItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Archive marca el ítem como ARCHIVED: deja de alertar y de entrar en opname,
// pero su historial de movimientos se conserva.
func (uc *ItemUseCase) Archive(ctx context.Context, id, itemType string) (*dto.ItemResponse, error) {
	var out *dto.ItemResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		item, err := r.Items.GetByID(id, itemType)
		if err != nil {
			return err
		}
		if item.Status == entity.ItemStatusArchived {
			return domain.ErrConflict
		}
		item.Status = entity.ItemStatusArchived
		item.UpdatedAt = time.Now()
		if err := r.Items.Update(item); err != nil {
			return err
		}
		out = toItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List lista el catálogo; itemType vacío devuelve ambas colecciones.
func (uc *ItemUseCase) List(ctx context.Context, itemType string) (*dto.ItemListResponse, error) {
	if itemType != "" && itemType != entity.ItemTypeRoom && itemType != entity.ItemTypeLaundry {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.ItemListResponse
	err := uc.tx.Run(ctx, func(r ports.RepoSet) error {
		items, err := r.Items.List(itemType)
		if err != nil {
			return err
		}
		resp := make([]dto.ItemResponse, 0, len(items))
		for _, item := range items {
			resp = append(resp, *toItemResponse(item))
		}
		out = &dto.ItemListResponse{Items: resp, Total: len(resp)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toItemResponse(i *entity.InventoryItem) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:         i.ID,
		Type:       i.Type,
		Name:       i.Name,
		Category:   i.Category,
		Size:       i.Size,
		Unit:       i.Unit,
		Mandatory:  i.Mandatory,
		ParPerRoom: i.ParPerRoom,
		MinStock:   i.MinStock,
		MaxStock:   i.MaxStock,
		OnHand:     i.OnHand,
		Status:     i.Status,
		Vendor:     i.Vendor,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}
