package commands

import (
	"context"

	reqdto "chargeway/internal/handler/dto/request"
	"chargeway/internal/infra"
	"chargeway/internal/pkg/errs"
	"chargeway/internal/upstream"
	"chargeway/internal/usecase/queries"
)

var (
	ErrVariantNotFound = errs.New("vehicle variant not found")
	ErrVehicleNotFound = errs.New("vehicle not found")
)

type VehicleGateway interface {
	AddVehicle(ctx context.Context, token string, clientID, variantID int64) (*upstream.Vehicle, error)
	RemoveVehicle(ctx context.Context, token string, vehicleID int64) error
}

type VehicleCommands interface {
	Register(ctx context.Context, token string, clientID int64, req reqdto.RegisterVehicleRequest) (*queries.VehicleView, error)
	Remove(ctx context.Context, token string, vehicleID int64) error
}

type vehicleCommandsImpl struct {
	gateway VehicleGateway
}

func NewVehicleCommands(gateway VehicleGateway) VehicleCommands {
	return &vehicleCommandsImpl{gateway: gateway}
}

func (v *vehicleCommandsImpl) Register(ctx context.Context, token string, clientID int64, req reqdto.RegisterVehicleRequest) (*queries.VehicleView, error) {
	vehicle, err := v.gateway.AddVehicle(ctx, token, clientID, req.VariantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVariantNotFound)
		}
		return nil, err
	}

	view := &queries.VehicleView{ID: vehicle.ID}
	if vehicle.Variant != nil {
		view.VariantID = vehicle.Variant.ID
		view.VariantName = vehicle.Variant.Name
		view.BatteryCapacity = vehicle.Variant.BatteryCapacity
	}
	return view, nil
}

func (v *vehicleCommandsImpl) Remove(ctx context.Context, token string, vehicleID int64) error {
	if err := v.gateway.RemoveVehicle(ctx, token, vehicleID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrVehicleNotFound)
		}
		return err
	}
	return nil
}
