package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"

	"fitbite/internal/repositories"
	mem "fitbite/pkg/memcache"
)

var Module = fx.Provide(provideRevocationStore)

// provideRevocationStore backs the in-memory cache with the durable
// SessionsRevokedAt stamp on the account row, so revocations survive a
// process restart.
func provideRevocationStore(accountRepo repositories.AccountRepository) mem.RevocationStore {
	return mem.NewRevocationCache(func(accountID string) (time.Time, error) {
		account, err := accountRepo.FindById(context.Background(), accountID)
		if err != nil {
			return time.Time{}, err
		}
		if account == nil || account.SessionsRevokedAt == 0 {
			return time.Time{}, nil
		}
		return time.Unix(account.SessionsRevokedAt, 0), nil
	})
}
