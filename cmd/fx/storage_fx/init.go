package storage_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"fitbite/internal/services"
)

var Module = fx.Provide(provideCertificateStore)

func provideCertificateStore() services.CertificateStore {
	store, err := services.NewMinioCertificateStore()
	if err != nil {
		log.Fatalf("Failed to initialize certificate store: %v", err)
	}

	if err := store.EnsureBucket(context.Background()); err != nil {
		log.Printf("Failed to ensure certificate bucket: %v", err)
	}

	return store
}
