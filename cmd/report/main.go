package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"telco_reports/internal/adapters/observability"
	"telco_reports/internal/app"
	"telco_reports/internal/domain"
	"telco_reports/internal/shared"
	mongorepo "telco_reports/internal/storage/mongodb"
	mysqlrepo "telco_reports/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise); report rows go to
	// stdout, logs to stderr
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	root := &cobra.Command{
		Use:           "report",
		Short:         "Read-only reporting over the billing and listing stores",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(billingCmd(cfg), listingsCmd(cfg))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func billingCmd(cfg shared.Config) *cobra.Command {
	return &cobra.Command{
		Use:       "billing <report>|all",
		Short:     "Run billing reports against the relational store",
		Args:      cobra.ExactArgs(1),
		ValidArgs: append([]string{"all"}, app.BillingReportNames...),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			db, err := sql.Open("mysql", cfg.MySQLDSN)
			if err != nil {
				return &domain.ConnectionError{Store: "mysql", Err: err}
			}
			defer db.Close()
			if err := db.PingContext(ctx); err != nil {
				return &domain.ConnectionError{Store: "mysql", Err: err}
			}

			svc := app.NewBillingReports(mysqlrepo.New(db), nil, 0)
			return runReports(ctx, args[0], app.BillingReportNames, svc.Render)
		},
	}
}

func listingsCmd(cfg shared.Config) *cobra.Command {
	return &cobra.Command{
		Use:       "listings <report>|all",
		Short:     "Run listing reports against the document store",
		Args:      cobra.ExactArgs(1),
		ValidArgs: append([]string{"all"}, app.ListingReportNames...),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
			if err != nil {
				return &domain.ConnectionError{Store: "mongodb", Err: err}
			}
			defer func() { _ = client.Disconnect(context.Background()) }()
			if err := client.Ping(ctx, nil); err != nil {
				return &domain.ConnectionError{Store: "mongodb", Err: err}
			}

			svc := app.NewListingReports(mongorepo.New(client, cfg.MongoDB, cfg.MongoColl), nil, 0)
			return runReports(ctx, args[0], app.ListingReportNames, svc.Render)
		},
	}
}

// runReports runs one named report, or every report in order for "all".
// Reports are independent: in all mode a failure is logged and the remaining
// reports still run, but the first error comes back so the process exits
// non-zero.
func runReports(ctx context.Context, arg string, names []string, render func(context.Context, string, io.Writer) error) error {
	if arg != "all" {
		return render(ctx, arg, os.Stdout)
	}

	var firstErr error
	for _, name := range names {
		fmt.Printf("== %s ==\n", name)
		if err := render(ctx, name, os.Stdout); err != nil {
			log.Error().Str("report", name).Err(err).Msg("report failed")
			if firstErr == nil {
				firstErr = err
			}
		}
		fmt.Println()
	}
	return firstErr
}
