package rack

import "context"

// Repository defines the persistence interface for racks.
type Repository interface {
	Create(ctx context.Context, rack *Rack) error
	GetByID(ctx context.Context, id uint) (*Rack, error)
	ListBySite(ctx context.Context, siteID uint, offset, limit int) ([]*Rack, int64, error)
	List(ctx context.Context, offset, limit int) ([]*Rack, int64, error)
	Update(ctx context.Context, rack *Rack) error
	Delete(ctx context.Context, id uint) error
}

// DeviceRepository defines the persistence interface for devices.
type DeviceRepository interface {
	Create(ctx context.Context, device *Device) error
	GetByID(ctx context.Context, id uint) (*Device, error)
	ListByRack(ctx context.Context, rackID uint) ([]*Device, error)
	Update(ctx context.Context, device *Device) error
	Delete(ctx context.Context, id uint) error
}

// SiteRepository defines the persistence interface for sites.
type SiteRepository interface {
	Create(ctx context.Context, site *Site) error
	GetByID(ctx context.Context, id uint) (*Site, error)
	GetBySlug(ctx context.Context, slug string) (*Site, error)
	List(ctx context.Context, offset, limit int) ([]*Site, int64, error)
	Delete(ctx context.Context, id uint) error
}

// ReservationRepository defines the persistence interface for rack
// reservations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *Reservation) error
	GetByID(ctx context.Context, id uint) (*Reservation, error)
	ListByRack(ctx context.Context, rackID uint) ([]*Reservation, error)
	Delete(ctx context.Context, id uint) error
}
