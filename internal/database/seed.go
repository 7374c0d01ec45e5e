package database

import (
	"log"

	"inventory-pos/internal/models"
	"inventory-pos/internal/repository"
	"inventory-pos/internal/service"

	"gorm.io/gorm"
)

var defaultPaymentMethods = []string{
	"Efectivo",
	"Tarjeta",
	"Transferencia",
	"PayPal",
	"Mercado Pago",
}

// Seed fills empty tables with the baseline data the app needs on
// first boot: the fixed roles, the house brands, the payment method
// vocabulary and a bootstrap admin account.
func Seed(db *gorm.DB) error {
	roles := service.NewRoleService(repository.NewRoleRepo(db))
	if err := roles.EnsureDefaults(); err != nil {
		return err
	}

	brands := service.NewBrandService(repository.NewBrandRepo(db))
	if err := brands.EnsureDefaults(); err != nil {
		return err
	}

	catalogs := service.NewCatalogService(repository.NewCatalogRepo(db))
	for _, method := range defaultPaymentMethods {
		if _, err := catalogs.AddIfAbsent(models.CatalogPaymentMethod, method); err != nil {
			return err
		}
	}

	users := service.NewUserService(repository.NewUserRepo(db), repository.NewRoleRepo(db))
	if err := users.EnsureDefaultAdmin(); err != nil {
		return err
	}

	log.Println("✅ Seed data ready")
	return nil
}
