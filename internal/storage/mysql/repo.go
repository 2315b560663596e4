package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"telco_reports/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// classify maps a driver error to the two report error kinds: the server
// rejected the query (schema drift, syntax) -> QueryError; everything else
// means we never got an answer -> ConnectionError.
func classify(report string, err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return &domain.QueryError{Store: "mysql", Report: report, Err: err}
	}
	return &domain.ConnectionError{Store: "mysql", Err: err}
}

func rowsErr(report string, rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		return classify(report, err)
	}
	return nil
}

// withConn pins a single connection from the pool for the span of one report
// and releases it on every exit path.
func (r *Repo) withConn(ctx context.Context, fn func(*sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return &domain.ConnectionError{Store: "mysql", Err: err}
	}
	defer conn.Close()
	return fn(conn)
}

func (r *Repo) ActiveCustomers(ctx context.Context) ([]domain.ActiveCustomerRow, error) {
	var out []domain.ActiveCustomerRow
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, activeCustomersSQL)
		if err != nil {
			return classify("active_customers", err)
		}
		defer rows.Close()

		for rows.Next() {
			var row domain.ActiveCustomerRow
			if err := rows.Scan(&row.CustomerID, &row.FirstName, &row.LastName, &row.Email); err != nil {
				return classify("active_customers", err)
			}
			out = append(out, row)
		}
		return rowsErr("active_customers", rows)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) TopActiveAccounts(ctx context.Context) ([]domain.ActiveAccountRow, error) {
	var out []domain.ActiveAccountRow
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, topActiveAccountsSQL)
		if err != nil {
			return classify("top_active_accounts", err)
		}
		defer rows.Close()

		for rows.Next() {
			var row domain.ActiveAccountRow
			if err := rows.Scan(
				&row.CustomerID,
				&row.FirstName,
				&row.LastName,
				&row.Email,
				&row.AccountID,
				&row.AccountType,
				&row.AccountStatus,
				&row.Balance,
			); err != nil {
				return classify("top_active_accounts", err)
			}
			out = append(out, row)
		}
		return rowsErr("top_active_accounts", rows)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) UnderfundedContracts(ctx context.Context) ([]domain.UnderfundedContractRow, error) {
	var out []domain.UnderfundedContractRow
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, underfundedContractsSQL)
		if err != nil {
			return classify("underfunded_contracts", err)
		}
		defer rows.Close()

		for rows.Next() {
			var row domain.UnderfundedContractRow
			if err := rows.Scan(&row.PlanName, &row.MonthlyFee, &row.ContractStatus, &row.Balance); err != nil {
				return classify("underfunded_contracts", err)
			}
			out = append(out, row)
		}
		return rowsErr("underfunded_contracts", rows)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) DeviceContractSummary(ctx context.Context) ([]domain.DeviceContractSummaryRow, error) {
	var out []domain.DeviceContractSummaryRow
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, deviceContractSummarySQL)
		if err != nil {
			return classify("device_contract_summary", err)
		}
		defer rows.Close()

		for rows.Next() {
			var row domain.DeviceContractSummaryRow
			if err := rows.Scan(
				&row.CustomerID,
				&row.FirstName,
				&row.LastName,
				&row.AccountID,
				&row.DeviceCount,
				&row.ActiveContracts,
			); err != nil {
				return classify("device_contract_summary", err)
			}
			out = append(out, row)
		}
		return rowsErr("device_contract_summary", rows)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) InvoicePaymentSummary(ctx context.Context) ([]domain.InvoiceSummaryRow, error) {
	var out []domain.InvoiceSummaryRow
	err := r.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, invoicePaymentSummarySQL)
		if err != nil {
			return classify("invoice_payment_summary", err)
		}
		defer rows.Close()

		for rows.Next() {
			var row domain.InvoiceSummaryRow
			if err := rows.Scan(
				&row.AccountID,
				&row.TotalAmount,
				&row.TotalPaid,
				&row.TotalUnpaid,
				&row.OverdueCount,
			); err != nil {
				return classify("invoice_payment_summary", err)
			}
			out = append(out, row)
		}
		return rowsErr("invoice_payment_summary", rows)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
