package refdata

// Analytics event vocabularies.
var (
	BranchEvents = []string{
		"account_opening",
		"transaction_processing",
		"kyc_verification",
		"cash_deposit",
		"customer_lookup",
	}
	CustomerEvents = []string{
		"screen_view",
		"login_success",
		"balance_check",
		"transfer_initiated",
		"transaction_completed",
		"bill_payment",
		"airtime_purchase",
		"statement_download",
		"logout",
	}
)

// TransactionTypes are the six transaction categories attached to completed
// transactions.
var TransactionTypes = []string{
	"transfer",
	"bill_payment",
	"airtime",
	"deposit",
	"withdrawal",
	"loan_repayment",
}

// AccountTypes used on branch account-opening events.
var AccountTypes = []string{"savings", "current", "business", "student"}

// Screen catalogs.
var (
	CustomerScreens = []string{
		"home", "login", "accounts", "transfer", "bill_pay",
		"airtime", "loans", "statements", "settings", "support",
	}
	BranchScreens = []string{
		"teller_dashboard", "customer_search", "account_opening",
		"transaction_processing", "kyc_review", "cash_management",
	}
)

// Endpoint catalogs for HTTP performance events.
var (
	CustomerEndpoints = []string{
		"/api/v1/auth/login",
		"/api/v1/accounts",
		"/api/v1/transactions",
		"/api/v1/transfer",
		"/api/v1/billpay",
		"/api/v1/airtime",
		"/api/v1/loans/offers",
		"/api/v1/statements",
	}
	BranchEndpoints = []string{
		"/api/v1/branch/customers",
		"/api/v1/branch/accounts/open",
		"/api/v1/branch/transactions",
		"/api/v1/branch/kyc",
		"/api/v1/branch/cash",
	}
)

// Trace vocabularies; trace names are emitted as "banking:<name>".
var (
	CustomerTraces = []string{
		"login_flow", "account_refresh", "transfer_submit",
		"statement_render", "balance_sync",
	}
	BranchTraces = []string{
		"customer_lookup", "kyc_scan", "till_reconcile",
	}
)

// CrashGroup is one fixed crash signature.
type CrashGroup struct {
	ID            string
	ExceptionType string
	Weight        float64
}

// CrashGroups are the seven modelled crash signatures.
var CrashGroups = []CrashGroup{
	{ID: "CG-001", ExceptionType: "NullPointerException", Weight: 0.25},
	{ID: "CG-002", ExceptionType: "NetworkOnMainThreadException", Weight: 0.15},
	{ID: "CG-003", ExceptionType: "IllegalStateException", Weight: 0.15},
	{ID: "CG-004", ExceptionType: "OutOfMemoryError", Weight: 0.12},
	{ID: "CG-005", ExceptionType: "NSInvalidArgumentException", Weight: 0.12},
	{ID: "CG-006", ExceptionType: "IndexOutOfBoundsException", Weight: 0.11},
	{ID: "CG-007", ExceptionType: "SQLiteDatabaseLockedException", Weight: 0.10},
}

// NonFatalCrashTypes lists the platform-appropriate non-fatal crash types.
// ANR is Android-only.
var NonFatalCrashTypes = map[string][]string{
	"ios":     {"handled_exception", "memory_warning"},
	"android": {"handled_exception", "anr", "memory_warning"},
	"web":     {"handled_exception", "unhandled_rejection"},
}
