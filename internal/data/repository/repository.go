package repository

import (
	"tour-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Admin       AdminRepository
	Session     SessionRepository
	Package     PackageRepository
	Booking     BookingRepository
	Stats       StatsRepository
	Event       EventRepository
	FAQ         FAQRepository
	Gallery     GalleryRepository
	Testimonial TestimonialRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Admin:       NewAdminRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Package:     NewPackageRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Stats:       NewStatsRepository(db, log),
		Event:       NewEventRepository(db, log),
		FAQ:         NewFAQRepository(db, log),
		Gallery:     NewGalleryRepository(db, log),
		Testimonial: NewTestimonialRepository(db, log),
	}
}
