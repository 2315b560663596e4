//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"

	"telco_reports/internal/domain"
	mysqlrepo "telco_reports/internal/storage/mysql"
)

// ---------- helpers ----------

func migrationsDir(t *testing.T) string {
	t.Helper()
	if d := os.Getenv("MIGRATIONS_DIR"); d != "" {
		return d
	}
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir(t)

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func seedFixture(t *testing.T, db *sql.DB) {
	t.Helper()
	stmts := []string{
		`INSERT INTO customer VALUES
		  ('C001','Ava','Nguyen','ava@example.com','514-555-0101','12 Elm St'),
		  ('C002','Ben','Ortiz','ben@example.com','514-555-0102','48 Oak Ave'),
		  ('C003','Carla','Singh','carla@example.com','514-555-0103','7 Pine Rd'),
		  ('C004','Dan','Moreau','dan@example.com','514-555-0104','99 Birch Blvd')`,
		`INSERT INTO account VALUES
		  ('A001','C001',90.00,'individual','active','2023-09-01'),
		  ('A002','C002',20.50,'individual','active','2024-01-15'),
		  ('A003','C003',310.40,'family','active','2022-06-20'),
		  ('A004','C004',150.00,'business','suspended','2024-03-10')`,
		`INSERT INTO plan VALUES
		  ('P001','Family Share',50.99,100,TRUE),
		  ('P002','Basic',35.99,NULL,FALSE)`,
		`INSERT INTO contract VALUES
		  ('CT001','2023-09-15','2025-09-15','active','A001','P001'),
		  ('CT002','2024-10-10','2025-10-10','active','A002','P002'),
		  ('CT003','2023-07-10','2024-07-10','expired','A003','P001'),
		  ('CT004','2024-03-22','2025-03-22','active','A003','P002'),
		  ('CT005','2024-05-01','2025-05-01','active','A004','P001')`,
		`INSERT INTO device VALUES
		  ('D001','A003','356938035643801','Pixel 8'),
		  ('D002','A003','490154203237518','iPhone 15'),
		  ('D003','A002','358673013795895','Galaxy S24')`,
		`INSERT INTO invoice VALUES
		  ('I001','A001','2025-01-01','2025-01-31',40.00,'paid'),
		  ('I002','A001','2025-02-01','2025-02-28',25.50,'unpaid'),
		  ('I003','A001','2024-12-01','2024-12-31',10.00,'overdue'),
		  ('I004','A002','2025-02-01','2025-02-28',99.99,'unpaid'),
		  ('I005','A003','2025-01-01','2025-01-31',60.00,'paid')`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=telco",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/telco?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC", hostPort)

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	seedFixture(t, db)
	return db
}

// ---------- the tests ----------

func TestRepo_BillingReports(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	t.Run("active customers", func(t *testing.T) {
		rows, err := repo.ActiveCustomers(ctx)
		require.NoError(t, err)

		ids := make([]string, 0, len(rows))
		for _, r := range rows {
			ids = append(ids, r.CustomerID)
		}
		// C003 holds one active and one expired contract but appears once.
		require.ElementsMatch(t, []string{"C001", "C002", "C003", "C004"}, ids)
	})

	t.Run("top active accounts by balance", func(t *testing.T) {
		rows, err := repo.TopActiveAccounts(ctx)
		require.NoError(t, err)
		require.LessOrEqual(t, len(rows), 15)
		require.Len(t, rows, 3) // A004 is suspended

		for i, r := range rows {
			require.Equal(t, "active", r.AccountStatus)
			if i > 0 {
				require.GreaterOrEqual(t, rows[i-1].Balance, r.Balance)
			}
		}
		require.Equal(t, "A003", rows[0].AccountID)
	})

	t.Run("underfunded active contracts", func(t *testing.T) {
		rows, err := repo.UnderfundedContracts(ctx)
		require.NoError(t, err)

		// A001 (90.00) covers its 50.99 plan; only A002 (20.50 < 35.99) is
		// underfunded.
		require.Len(t, rows, 1)
		require.Equal(t, "Basic", rows[0].PlanName)
		require.Equal(t, "active", rows[0].ContractStatus)
		require.Less(t, rows[0].Balance, rows[0].MonthlyFee)
	})

	t.Run("device contract summary", func(t *testing.T) {
		rows, err := repo.DeviceContractSummary(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2) // A001 has no device, A004 is suspended

		require.Equal(t, "A003", rows[0].AccountID)
		require.Equal(t, 2, rows[0].DeviceCount)
		require.Equal(t, 1, rows[0].ActiveContracts) // CT003 expired, not counted

		require.Equal(t, "A002", rows[1].AccountID)
		require.Equal(t, 1, rows[1].DeviceCount)
		require.Equal(t, 1, rows[1].ActiveContracts)
	})

	t.Run("invoice payment summary", func(t *testing.T) {
		rows, err := repo.InvoicePaymentSummary(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		// Ordered by total unpaid descending: A002 (99.99), A001 (25.50), A003 (0).
		require.Equal(t, "A002", rows[0].AccountID)
		require.InDelta(t, 99.99, rows[0].TotalUnpaid, 0.001)

		require.Equal(t, "A001", rows[1].AccountID)
		require.InDelta(t, 75.50, rows[1].TotalAmount, 0.001)
		require.InDelta(t, 40.00, rows[1].TotalPaid, 0.001)
		require.InDelta(t, 25.50, rows[1].TotalUnpaid, 0.001)
		require.Equal(t, 1, rows[1].OverdueCount)

		require.Equal(t, "A003", rows[2].AccountID)
		require.Zero(t, rows[2].TotalUnpaid)
	})

	t.Run("idempotent re-run", func(t *testing.T) {
		first, err := repo.TopActiveAccounts(ctx)
		require.NoError(t, err)
		second, err := repo.TopActiveAccounts(ctx)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("schema drift is a query error", func(t *testing.T) {
		_, err := db.Exec("ALTER TABLE device RENAME TO device_gone")
		require.NoError(t, err)
		t.Cleanup(func() { _, _ = db.Exec("ALTER TABLE device_gone RENAME TO device") })

		_, err = repo.DeviceContractSummary(ctx)
		var qe *domain.QueryError
		require.ErrorAs(t, err, &qe)
	})
}

func TestRepo_UnreachableStore(t *testing.T) {
	// Nothing listens on this port; the driver fails on connection acquire.
	db, err := sql.Open("mysql", "root:root@tcp(127.0.0.1:1)/telco?parseTime=true&timeout=2s")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()

	repo := mysqlrepo.New(db)
	_, err = repo.ActiveCustomers(context.Background())
	var ce *domain.ConnectionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConnectionError, got %v", err)
	}
}
