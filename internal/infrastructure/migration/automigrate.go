package migration

import (
	"patchbay/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.SiteModel{},
		&models.RackModel{},
		&models.RackReservationModel{},
		&models.DeviceModel{},
		&models.PortModel{},
		&models.CableModel{},
		&models.CircuitModel{},
		&models.CircuitTerminationModel{},
	}
}
