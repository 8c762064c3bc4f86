package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-billing/app/repository"
	"github.com/vibast-solutions/ms-go-billing/app/service"
	"github.com/vibast-solutions/ms-go-billing/config"

	_ "github.com/go-sql-driver/mysql"
)

var (
	chargeVendorID uint64
	chargePhone    string
	chargeDryRun   bool
)

var chargeCmd = &cobra.Command{
	Use:   "charge",
	Short: "Compute a vendor's total and push the payment from the command line",
	Run: func(_ *cobra.Command, _ []string) {
		runJob("charge", runCharge)
	},
}

func init() {
	rootCmd.AddCommand(chargeCmd)

	chargeCmd.Flags().Uint64Var(&chargeVendorID, "vendor-id", 0, "Vendor to charge")
	chargeCmd.Flags().StringVar(&chargePhone, "phone", "", "Phone number to receive the STK push")
	chargeCmd.Flags().BoolVar(&chargeDryRun, "dry-run", false, "Compute the total without pushing a payment")
	_ = chargeCmd.MarkFlagRequired("vendor-id")
}

func runCharge() error {
	cfg, db, cleanup, err := mustSetup()
	if err != nil {
		return err
	}
	defer cleanup()

	vendorRepo := repository.NewVendorRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	billingService := service.NewBillingService(vendorRepo, subscriptionRepo, branchRepo, cfg.Billing)
	paymentService := service.NewPaymentService(billingService, newGateway(cfg.Mpesa), paymentRepo)

	ctx := context.Background()
	if chargeDryRun {
		amount, err := billingService.ComputeTotal(ctx, chargeVendorID)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"vendor_id": chargeVendorID, "amount": amount}).Info("billing_total")
		return nil
	}

	raw, err := paymentService.ProcessVendorPayment(ctx, chargeVendorID, chargePhone)
	if err != nil {
		return err
	}

	fmt.Println(string(raw))
	return nil
}

func mustSetup() (*config.Config, *sql.DB, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := configureLogging(cfg); err != nil {
		return nil, nil, nil, err
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, nil, err
	}

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}

	return cfg, db, cleanup, nil
}

func runJob(name string, fn func() error) {
	start := time.Now()
	err := fn()
	latency := time.Since(start)
	if err != nil {
		logrus.WithError(err).WithField("job", name).WithField("latency", latency.String()).Fatal("job_failed")
		return
	}
	logrus.WithField("job", name).WithField("latency", latency.String()).Info("job_completed")
}
