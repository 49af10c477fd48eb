package request

type RegisterVehicleRequest struct {
	VariantID int64 `json:"variant_id" binding:"required"`
}
