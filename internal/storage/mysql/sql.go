package mysql

// -----------------------------------------------------------------------------
// REPORT QUERIES
// All read-only. Schema bootstrap and bulk data load are external setup steps;
// migrations/ carries the DDL only so integration tests can seed a container.
// -----------------------------------------------------------------------------

// Customers holding at least one account with an active contract.
// No ORDER BY on purpose: result order is store-defined.
const activeCustomersSQL = `
SELECT DISTINCT
  c.CustomerID,
  c.CustomerFirstName,
  c.CustomerLastName,
  c.CustomerEmail
FROM customer c
JOIN account a  ON a.CustomerID = c.CustomerID
JOIN contract ct ON ct.AccountID = a.AccountID
WHERE ct.ContractStatus = 'active'
`

const topActiveAccountsSQL = `
SELECT
  c.CustomerID,
  c.CustomerFirstName,
  c.CustomerLastName,
  c.CustomerEmail,
  a.AccountID,
  a.AccountType,
  a.AccountStatus,
  a.AccountBalance
FROM customer c
JOIN account a ON a.CustomerID = c.CustomerID
WHERE a.AccountStatus = 'active'
ORDER BY a.AccountBalance DESC
LIMIT 15
`

// Active contracts whose account balance cannot cover the plan's monthly fee.
const underfundedContractsSQL = `
SELECT
  p.PlanName,
  p.PlanMonthlyFee,
  ct.ContractStatus,
  a.AccountBalance
FROM plan p
JOIN contract ct ON ct.PlanID = p.PlanID
JOIN account a   ON a.AccountID = ct.AccountID
WHERE ct.ContractStatus = 'active'
  AND a.AccountBalance < p.PlanMonthlyFee
ORDER BY a.AccountBalance DESC
`

// Per-account device and active-contract counts. Devices and contracts both
// fan out from account, so the join multiplies rows; DISTINCT keeps the counts
// honest on both sides.
const deviceContractSummarySQL = `
SELECT
  c.CustomerID,
  c.CustomerFirstName,
  c.CustomerLastName,
  a.AccountID,
  COUNT(DISTINCT d.DeviceID)    AS NumDevices,
  COUNT(DISTINCT ct.ContractID) AS NumActiveContracts
FROM customer c
JOIN account a   ON a.CustomerID = c.CustomerID
JOIN device d    ON d.AccountID = a.AccountID
JOIN contract ct ON ct.AccountID = a.AccountID
WHERE a.AccountStatus = 'active'
  AND ct.ContractStatus = 'active'
GROUP BY c.CustomerID, c.CustomerFirstName, c.CustomerLastName, a.AccountID
ORDER BY NumDevices DESC, NumActiveContracts DESC
`

const invoicePaymentSummarySQL = `
SELECT
  a.AccountID,
  SUM(i.InvoiceAmount) AS TotalInvoiceAmount,
  SUM(CASE WHEN i.InvoiceStatus = 'paid'   THEN i.InvoiceAmount ELSE 0 END) AS TotalPaidAmount,
  SUM(CASE WHEN i.InvoiceStatus = 'unpaid' THEN i.InvoiceAmount ELSE 0 END) AS TotalUnpaidAmount,
  SUM(CASE WHEN i.InvoiceStatus = 'overdue' THEN 1 ELSE 0 END)             AS NumOverdueInvoices
FROM account a
JOIN invoice i ON i.AccountID = a.AccountID
GROUP BY a.AccountID
ORDER BY TotalUnpaidAmount DESC
`
