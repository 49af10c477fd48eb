package queries

import (
	"context"

	"chargeway/internal/upstream"
)

type VehicleCatalogGateway interface {
	ClientVehicles(ctx context.Context, token string, clientID int64) ([]upstream.Vehicle, error)
	Brands(ctx context.Context, token string) ([]upstream.Brand, error)
	Models(ctx context.Context, token string) ([]upstream.Model, error)
	Variants(ctx context.Context, token string) ([]upstream.Variant, error)
	MyProfile(ctx context.Context, token string) (*upstream.Profile, error)
}

type VehicleQueries interface {
	ListMine(ctx context.Context, token string, clientID int64) ([]VehicleView, error)
	Brands(ctx context.Context, token string) ([]BrandView, error)
	Models(ctx context.Context, token string, brandID int64) ([]ModelView, error)
	Variants(ctx context.Context, token string, modelID int64) ([]VariantView, error)
	Profile(ctx context.Context, token string) (*ProfileView, error)
}

type vehicleQueriesImpl struct {
	gateway VehicleCatalogGateway
}

func NewVehicleQueries(gateway VehicleCatalogGateway) VehicleQueries {
	return &vehicleQueriesImpl{gateway: gateway}
}

func (q *vehicleQueriesImpl) ListMine(ctx context.Context, token string, clientID int64) ([]VehicleView, error) {
	vehicles, err := q.gateway.ClientVehicles(ctx, token, clientID)
	if err != nil {
		return nil, err
	}

	views := make([]VehicleView, 0, len(vehicles))
	for _, v := range vehicles {
		view := VehicleView{ID: v.ID}
		if v.Variant != nil {
			view.VariantID = v.Variant.ID
			view.VariantName = v.Variant.Name
			view.BatteryCapacity = v.Variant.BatteryCapacity
		}
		views = append(views, view)
	}
	return views, nil
}

func (q *vehicleQueriesImpl) Brands(ctx context.Context, token string) ([]BrandView, error) {
	brands, err := q.gateway.Brands(ctx, token)
	if err != nil {
		return nil, err
	}

	views := make([]BrandView, 0, len(brands))
	for _, b := range brands {
		views = append(views, BrandView{ID: b.ID, Name: b.Name})
	}
	return views, nil
}

// Models returns the catalog filtered to one brand. The platform serves the
// full list; filtering here keeps the picker payload small.
func (q *vehicleQueriesImpl) Models(ctx context.Context, token string, brandID int64) ([]ModelView, error) {
	models, err := q.gateway.Models(ctx, token)
	if err != nil {
		return nil, err
	}

	views := make([]ModelView, 0, len(models))
	for _, m := range models {
		if brandID != 0 && m.BrandID != brandID {
			continue
		}
		views = append(views, ModelView{ID: m.ID, BrandID: m.BrandID, Name: m.Name})
	}
	return views, nil
}

func (q *vehicleQueriesImpl) Variants(ctx context.Context, token string, modelID int64) ([]VariantView, error) {
	variants, err := q.gateway.Variants(ctx, token)
	if err != nil {
		return nil, err
	}

	views := make([]VariantView, 0, len(variants))
	for _, v := range variants {
		if modelID != 0 && v.ModelID != modelID {
			continue
		}
		views = append(views, VariantView{
			ID:              v.ID,
			ModelID:         v.ModelID,
			Name:            v.Name,
			BatteryCapacity: v.BatteryCapacity,
		})
	}
	return views, nil
}

func (q *vehicleQueriesImpl) Profile(ctx context.Context, token string) (*ProfileView, error) {
	profile, err := q.gateway.MyProfile(ctx, token)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		ClientID:     profile.Client.ID,
		Firstname:    profile.Client.Firstname,
		Lastname:     profile.Client.Lastname,
		Username:     profile.Client.Username,
		Email:        profile.Client.Email,
		Region:       profile.Client.Region,
		VehicleCount: profile.VehicleCount,
	}, nil
}
