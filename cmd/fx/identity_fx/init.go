package identity_fx

import (
	"go.uber.org/fx"

	"fitbite/internal/repositories"
	"fitbite/internal/services"
	mem "fitbite/pkg/memcache"
)

var Module = fx.Provide(provideIdentityService)

func provideIdentityService(accountRepo repositories.AccountRepository, revocations mem.RevocationStore) services.IdentityService {
	return services.NewIdentityService(accountRepo, revocations)
}
