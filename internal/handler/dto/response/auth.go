package response

import "chargeway/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	Client      *queries.ProfileView `json:"client"`
}
