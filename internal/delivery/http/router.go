package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kashfety/kashfety-api/internal/delivery/http/handler"
	"github.com/kashfety/kashfety-api/internal/delivery/http/middleware"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	centerHandler       *handler.CenterHandler
	offeringHandler     *handler.OfferingHandler
	scheduleHandler     *handler.ScheduleHandler
	availabilityHandler *handler.AvailabilityHandler
	bookingHandler      *handler.BookingHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	centerHandler *handler.CenterHandler,
	offeringHandler *handler.OfferingHandler,
	scheduleHandler *handler.ScheduleHandler,
	availabilityHandler *handler.AvailabilityHandler,
	bookingHandler *handler.BookingHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		centerHandler:       centerHandler,
		offeringHandler:     offeringHandler,
		scheduleHandler:     scheduleHandler,
		availabilityHandler: availabilityHandler,
		bookingHandler:      bookingHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Browse routes (any authenticated user)
	browse := api.PathPrefix("").Subrouter()
	browse.Use(r.authMiddleware.Authenticate)
	browse.HandleFunc("/centers", r.centerHandler.ListCenters).Methods(http.MethodGet)
	browse.HandleFunc("/centers/{id}", r.centerHandler.GetCenter).Methods(http.MethodGet)
	browse.HandleFunc("/centers/{centerId}/offerings", r.offeringHandler.ListByCenter).Methods(http.MethodGet)
	browse.HandleFunc("/offerings/{id}", r.offeringHandler.GetOffering).Methods(http.MethodGet)
	browse.HandleFunc("/offerings/{id}/schedule", r.scheduleHandler.GetWeeklySchedule).Methods(http.MethodGet)
	browse.HandleFunc("/offerings/{id}/slots", r.availabilityHandler.GetAvailableSlots).Methods(http.MethodGet)

	// Schedule management (admin or center staff)
	manage := api.PathPrefix("").Subrouter()
	manage.Use(r.authMiddleware.Authenticate)
	manage.Use(middleware.RequireScheduleManager)
	manage.HandleFunc("/centers", r.centerHandler.CreateCenter).Methods(http.MethodPost)
	manage.HandleFunc("/centers/{id}", r.centerHandler.UpdateCenter).Methods(http.MethodPut)
	manage.HandleFunc("/offerings", r.offeringHandler.CreateOffering).Methods(http.MethodPost)
	manage.HandleFunc("/offerings/{id}", r.offeringHandler.UpdateOffering).Methods(http.MethodPut)
	manage.HandleFunc("/offerings/{id}/schedule", r.scheduleHandler.SaveWeeklySchedule).Methods(http.MethodPut)

	// Patient booking routes
	patient := api.PathPrefix("/bookings").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)
	patient.HandleFunc("", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	patient.HandleFunc("/{id}", r.bookingHandler.RescheduleBooking).Methods(http.MethodPut)
	patient.HandleFunc("/{id}/cancel", r.bookingHandler.CancelBooking).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/centers/{id}", r.centerHandler.DeleteCenter).Methods(http.MethodDelete)
	admin.HandleFunc("/offerings/{id}", r.offeringHandler.DeleteOffering).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
