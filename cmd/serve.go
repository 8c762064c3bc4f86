package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vibast-solutions/ms-go-billing/app/controller"
	"github.com/vibast-solutions/ms-go-billing/app/payment"
	"github.com/vibast-solutions/ms-go-billing/app/repository"
	"github.com/vibast-solutions/ms-go-billing/app/service"
	"github.com/vibast-solutions/ms-go-billing/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the HTTP (Echo) server for the billing service.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	vendorController, paymentController := buildControllers(cfg, db)
	e := setupHTTPServer(vendorController, paymentController, cfg.App.APIKey)

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}

	logrus.Info("Server stopped")
}

func buildControllers(cfg *config.Config, db *sql.DB) (*controller.VendorController, *controller.PaymentController) {
	vendorRepo := repository.NewVendorRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	productRepo := repository.NewProductRepository(db)

	vendorService := service.NewVendorService(vendorRepo, businessRepo, subscriptionRepo)
	businessService := service.NewBusinessService(vendorRepo, businessRepo, branchRepo, productRepo, subscriptionRepo)
	subscriptionService := service.NewSubscriptionService(vendorRepo, subscriptionRepo)
	billingService := service.NewBillingService(vendorRepo, subscriptionRepo, branchRepo, cfg.Billing)
	paymentService := service.NewPaymentService(billingService, newGateway(cfg.Mpesa), paymentRepo)

	vendorController := controller.NewVendorController(vendorService, businessService, subscriptionService)
	paymentController := controller.NewPaymentController(billingService, paymentService)

	return vendorController, paymentController
}

func newGateway(cfg config.MpesaConfig) payment.Service {
	if cfg.ConsumerKey == "" {
		logrus.Warn("No M-Pesa consumer key configured, using stub payment gateway")
		return payment.NewStubService()
	}
	return payment.NewDarajaClient(cfg)
}

func setupHTTPServer(
	vendorController *controller.VendorController,
	paymentController *controller.PaymentController,
	apiKey string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return fmt.Sprintf("rest-%s", uuid.New().String())
		},
	}))
	e.Use(requireAPIKey(apiKey))

	e.GET("/health", vendorController.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/plans", vendorController.ListPlans)

	e.POST("/vendors", vendorController.CreateVendor)
	e.GET("/vendors/:id", vendorController.GetVendor)
	e.POST("/businesses", vendorController.CreateBusiness)
	e.POST("/branches", vendorController.CreateBranch)
	e.POST("/products", vendorController.CreateProduct)
	e.POST("/subscriptions", vendorController.CreateSubscription)

	e.GET("/billing/:vendor_id", paymentController.GetBillingTotal)
	e.POST("/payments/:vendor_id", paymentController.ProcessPayment)
	e.GET("/payments/:vendor_id", paymentController.ListPayments)

	return e
}

// requireAPIKey guards every route except health and metrics when an
// API key is configured.
func requireAPIKey(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if apiKey == "" {
				return next(ctx)
			}
			path := ctx.Path()
			if path == "/health" || path == "/metrics" {
				return next(ctx)
			}
			if ctx.Request().Header.Get("X-API-Key") != apiKey {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid api key")
			}
			return next(ctx)
		}
	}
}
