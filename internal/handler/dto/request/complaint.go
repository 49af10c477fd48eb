package request

type CreateComplaintRequest struct {
	Description string `json:"description" binding:"required,min=10,max=2000"`
}
