package request

type CreateTenantRequest struct {
	Email string `json:"email" binding:"required,email,max=254"`
}
