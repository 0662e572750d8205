package handlers

// HandlerBundle aggregates every HTTP handler group so route registration
// takes a single dependency.
type HandlerBundle struct {
	Catalog      *CatalogHandler
	Booking      *BookingHandler
	Review       *ReviewHandler
	Favorite     *FavoriteHandler
	Notification *NotificationHandler
	Report       *ReportHandler
	Admin        *AdminHandler
}
