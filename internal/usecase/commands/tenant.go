package commands

//go:generate mockgen -source=tenant.go -destination=../../../tests/mock/commands/tenant.go -package=commandsmock

import (
	"context"

	"flat-reservation/internal/domain/tenant"
	"flat-reservation/internal/pkg/errs"
)

type TenantCommands interface {
	CreateTenant(ctx context.Context, email string) (tenant.Tenant, error)
}

type tenantCommandsImpl struct {
	tenants TenantRepository
}

func NewTenantCommands(tenants TenantRepository) TenantCommands {
	return &tenantCommandsImpl{tenants: tenants}
}

func (uc *tenantCommandsImpl) CreateTenant(ctx context.Context, email string) (tenant.Tenant, error) {
	addr, err := tenant.NewEmail(email)
	if err != nil {
		return tenant.Tenant{}, errs.NewValidation(err.Error())
	}

	saved, err := uc.tenants.Save(ctx, tenant.NewTenant(addr))
	if err != nil {
		return tenant.Tenant{}, errs.Mark(err, ErrStoreOperationFailed)
	}
	return saved, nil
}
