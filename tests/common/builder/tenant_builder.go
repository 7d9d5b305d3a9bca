//go:build unit

package builder

import (
	"flat-reservation/internal/domain/tenant"
	reqdto "flat-reservation/internal/handler/dto/request"
	"flat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type TenantBuilder struct {
	ID    uuid.UUID
	Email string
}

func NewTenantBuilder() *TenantBuilder {
	return &TenantBuilder{
		ID:    uuid.New(),
		Email: "tenant@example.com",
	}
}

func (b *TenantBuilder) With(mutate func(*TenantBuilder)) *TenantBuilder {
	mutate(b)
	return b
}

func (b *TenantBuilder) WithEmail(email string) *TenantBuilder {
	b.Email = email
	return b
}

// BuildDomain panics on an invalid email; use tenant.NewEmail directly to
// test validation.
func (b *TenantBuilder) BuildDomain() tenant.Tenant {
	email, err := tenant.NewEmail(b.Email)
	if err != nil {
		panic(err)
	}
	return tenant.ReconstructTenant(b.ID, email)
}

func (b *TenantBuilder) BuildView() *queries.TenantView {
	return &queries.TenantView{ID: b.ID, Email: b.Email}
}

func (b *TenantBuilder) BuildCreateRequestDTO() reqdto.CreateTenantRequest {
	return reqdto.CreateTenantRequest{Email: b.Email}
}
