package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/nssuwan186/hotelops-backend/internal/adapter/repository/postgres"
	"github.com/nssuwan186/hotelops-backend/internal/config"
	"github.com/nssuwan186/hotelops-backend/internal/usecase/geofence"
	"github.com/nssuwan186/hotelops-backend/internal/usecase/reconcile"
	"github.com/nssuwan186/hotelops-backend/internal/usecase/report"
)

func main() {
	fs := ff.NewFlagSet("hotelops")
	var (
		slipPath   = fs.StringLong("slip", "", "Path to a recognized slip text file to reconcile")
		fileID     = fs.StringLong("file-id", "", "Opaque image handle recorded with the slip")
		lat        = fs.Float64Long("lat", 0, "Latitude for a geofence check")
		lon        = fs.Float64Long("lon", 0, "Longitude for a geofence check")
		checkPoint = fs.BoolLong("geofence", "Run a geofence check for --lat/--lon")
		daily      = fs.BoolLong("report", "Print the daily financial report")
		initSchema = fs.BoolLong("init-schema", "Create database tables if missing and exit")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("HOTELOPS"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Load()
	logger := config.NewLogger(cfg.LogLevel)

	db, err := postgres.NewDB(cfg.DatabaseConnStr)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()

	if *initSchema {
		if err := db.InitSchema(ctx); err != nil {
			logger.WithError(err).Fatal("failed to initialize schema")
		}
		logger.Info("schema initialized")
		return
	}

	bookingRepo := postgres.NewBookingRepository(db)
	geofenceRepo := postgres.NewGeofenceRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)

	// The recognizer is an external engine; this binary only accepts text
	// that has already been through one.
	reconcileService := reconcile.NewService(bookingRepo, nil, logger)
	evaluator := geofence.NewEvaluator(geofenceRepo, logger)
	reportService := report.NewReportService(bookingRepo, expenseRepo)

	switch {
	case *slipPath != "":
		runReconcile(ctx, reconcileService, *slipPath, *fileID)
	case *checkPoint:
		runGeofence(ctx, evaluator, *lat, *lon)
	case *daily:
		runReport(ctx, reportService)
	default:
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintln(os.Stderr, "error: one of --slip, --geofence or --report is required")
		os.Exit(1)
	}
}

func runReconcile(ctx context.Context, service *reconcile.Service, slipPath, fileID string) {
	text, err := os.ReadFile(slipPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if fileID == "" {
		fileID = slipPath
	}

	outcome, err := service.ReconcileText(ctx, fileID, string(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if outcome.Booking == nil {
		fmt.Printf("read slip (name: %s, amount: %s) but no matching unpaid booking was found\n",
			outcome.Fields.Name, outcome.Fields.Amount)
		return
	}

	if outcome.Slip == nil {
		fmt.Printf("booking %d was already settled\n", outcome.Booking.ID)
		return
	}

	fmt.Printf("payment verified for booking %d (customer: %s); booking is now marked as paid\n",
		outcome.Booking.ID, outcome.Booking.CustomerName)
}

func runGeofence(ctx context.Context, evaluator *geofence.Evaluator, lat, lon float64) {
	matches, err := evaluator.ContainingPoint(ctx, lat, lon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Println("point is not inside any known geofence")
		return
	}

	for _, fence := range matches {
		fmt.Printf("inside geofence: %s\n", fence.Name)
	}
}

func runReport(ctx context.Context, service *report.ReportService) {
	summary, err := service.Daily(ctx, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("financial report for %s:\n", summary.Date.Format("2006-01-02"))
	fmt.Printf("- total income:   %s\n", summary.Income)
	fmt.Printf("- total expenses: %s\n", summary.Expenses)
	fmt.Printf("- net profit:     %s\n", summary.Net)
}
