package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"paytrack/internal/auth"
	"paytrack/internal/bookkeeping"
	"paytrack/internal/domain/accounts"
	"paytrack/internal/domain/storage/memory"
	"paytrack/internal/mailer"
	"paytrack/internal/metrics"
	"paytrack/internal/moderation"
	"paytrack/internal/ratelimiter"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type testServer struct {
	app           *application
	db            *memory.DB
	authenticator auth.Authenticator
	handler       http.Handler
}

func newTestServer(t *testing.T, rl ratelimiter.Config) *testServer {
	t.Helper()

	logger := zap.NewNop().Sugar()
	db := memory.New()
	authenticator := auth.NewJWTAuthenticator("test-secret", "paytrack", time.Hour)
	registry := prometheus.NewRegistry()

	limiter := ratelimiter.NewTokenBucketLimiter(rl.RequestsPerTimeFrame, rl.TimeFrame)
	t.Cleanup(limiter.Stop)

	app := &application{
		config: config{
			addr: ":8080",
			env:  "test",
			auth: authConfig{
				basic: basicConfig{user: "ops", pass: "ops-pass"},
			},
			rateLimiter: rl,
			corsOrigins: []string{"http://localhost:5173"},
		},
		logger:      logger,
		gateway:     auth.NewGateway(db.Accounts(), authenticator, logger),
		moderation:  moderation.NewService(db.Accounts(), db, mailer.NoopClient{}, "http://localhost:5173", logger),
		bookkeeping: bookkeeping.NewService(db.Customers(), db.Transactions(), db, logger),
		rateLimiter: limiter,
		metrics:     metrics.NewCollector(registry),
		registry:    registry,
	}

	return &testServer{app: app, db: db, authenticator: authenticator, handler: app.mount()}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

// seedAccount stores an account directly, bypassing registration.
func (s *testServer) seedAccount(t *testing.T, email string, role accounts.Role, status accounts.Status) (*accounts.Account, string) {
	t.Helper()

	a := &accounts.Account{Name: "Test " + string(role), Email: email, Role: role, Status: status}
	if err := a.Password.Set("supersecret"); err != nil {
		t.Fatal(err)
	}
	if err := s.db.Accounts().Create(context.Background(), a); err != nil {
		t.Fatal(err)
	}

	token, err := s.authenticator.GenerateToken(a.ID, a.Email, string(a.Role))
	if err != nil {
		t.Fatal(err)
	}
	return a, token
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()

	env := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var env errorEnvelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decoding error: %v", err)
	}
	return env
}

func checkResponseCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("expected the response code %d and we got %d", expected, actual)
	}
}

var disabledLimiter = ratelimiter.Config{RequestsPerTimeFrame: 20, TimeFrame: time.Minute, Enabled: false}

func TestRegisterAndLoginLifecycle(t *testing.T) {
	s := newTestServer(t, disabledLimiter)
	_, adminToken := s.seedAccount(t, "admin@cms.local", accounts.RoleAdmin, accounts.StatusApproved)

	rr := s.do(t, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"name":        "Sita Gurung",
		"shopName":    "Sita Store",
		"phoneNumber": "9800000000",
		"email":       "sita@example.com",
		"password":    "longenough",
	})
	checkResponseCode(t, http.StatusCreated, rr.Code)

	var registered RegisterResponse
	decodeData(t, rr, &registered)
	if registered.User.Status != accounts.StatusPending || registered.User.Role != accounts.RoleUser {
		t.Fatalf("registered account = %+v, want pending user", registered.User)
	}

	login := map[string]string{"email": "sita@example.com", "password": "longenough"}

	t.Run("pending login is refused with status", func(t *testing.T) {
		rr := s.do(t, http.MethodPost, "/v1/auth/login", "", login)
		checkResponseCode(t, http.StatusForbidden, rr.Code)

		env := decodeError(t, rr)
		if env.AccountStatus != "pending" {
			t.Errorf("account_status = %q, want pending", env.AccountStatus)
		}
	})

	t.Run("admin approves", func(t *testing.T) {
		rr := s.do(t, http.MethodPut, "/v1/admin/users/"+registered.User.ID.String()+"/approve", adminToken, nil)
		checkResponseCode(t, http.StatusOK, rr.Code)
	})

	t.Run("second approval conflicts", func(t *testing.T) {
		rr := s.do(t, http.MethodPut, "/v1/admin/users/"+registered.User.ID.String()+"/approve", adminToken, nil)
		checkResponseCode(t, http.StatusBadRequest, rr.Code)

		if env := decodeError(t, rr); env.Message != "User is already approved" {
			t.Errorf("message = %q", env.Message)
		}
	})

	var token string
	t.Run("approved login returns a token", func(t *testing.T) {
		rr := s.do(t, http.MethodPost, "/v1/auth/login", "", login)
		checkResponseCode(t, http.StatusOK, rr.Code)

		var res struct {
			Token string           `json:"token"`
			User  accounts.Account `json:"user"`
		}
		decodeData(t, rr, &res)
		if res.Token == "" || res.User.Email != "sita@example.com" {
			t.Fatalf("unexpected login result %+v", res)
		}
		token = res.Token
	})

	t.Run("verify returns the account", func(t *testing.T) {
		rr := s.do(t, http.MethodGet, "/v1/auth/verify", token, nil)
		checkResponseCode(t, http.StatusOK, rr.Code)
	})

	t.Run("wrong password is generic", func(t *testing.T) {
		rr := s.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{"email": "sita@example.com", "password": "nope-nope"})
		checkResponseCode(t, http.StatusUnauthorized, rr.Code)

		if env := decodeError(t, rr); env.Message != "Invalid email or password" {
			t.Errorf("message = %q", env.Message)
		}
	})

	t.Run("rejected account loses access", func(t *testing.T) {
		rr := s.do(t, http.MethodPut, "/v1/admin/users/"+registered.User.ID.String()+"/reject", adminToken, nil)
		checkResponseCode(t, http.StatusOK, rr.Code)

		rr = s.do(t, http.MethodGet, "/v1/auth/verify", token, nil)
		checkResponseCode(t, http.StatusForbidden, rr.Code)
		if env := decodeError(t, rr); env.AccountStatus != "rejected" {
			t.Errorf("account_status = %q, want rejected", env.AccountStatus)
		}
	})
}

func TestRegister_RejectsInvalidPayloads(t *testing.T) {
	s := newTestServer(t, disabledLimiter)

	tests := []struct {
		name string
		body any
	}{
		{"short password", map[string]string{"name": "A", "shopName": "B", "phoneNumber": "1", "email": "a@b.co", "password": "short"}},
		{"bad email", map[string]string{"name": "A", "shopName": "B", "phoneNumber": "1", "email": "nope", "password": "longenough"}},
		{"unknown field", map[string]string{"name": "A", "role": "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(t, http.MethodPost, "/v1/auth/register", "", tt.body)
			checkResponseCode(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestAuthTokenMiddleware(t *testing.T) {
	s := newTestServer(t, disabledLimiter)
	_, userToken := s.seedAccount(t, "owner@example.com", accounts.RoleUser, accounts.StatusApproved)

	tests := []struct {
		name    string
		path    string
		token   string
		want    int
		message string
	}{
		{"no token", "/v1/customers", "", http.StatusUnauthorized, "No token provided"},
		{"garbage token", "/v1/customers", "garbage", http.StatusUnauthorized, "Invalid or expired token"},
		{"user on admin route", "/v1/admin/users", userToken, http.StatusForbidden, "Access denied. admin role required."},
		{"user on own data", "/v1/customers", userToken, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(t, http.MethodGet, tt.path, tt.token, nil)
			checkResponseCode(t, tt.want, rr.Code)

			if tt.message != "" {
				if env := decodeError(t, rr); env.Message != tt.message {
					t.Errorf("message = %q, want %q", env.Message, tt.message)
				}
			}
		})
	}
}

func TestAdminDeleteAccount(t *testing.T) {
	s := newTestServer(t, disabledLimiter)
	admin, adminToken := s.seedAccount(t, "admin@cms.local", accounts.RoleAdmin, accounts.StatusApproved)
	owner, ownerToken := s.seedAccount(t, "owner@example.com", accounts.RoleUser, accounts.StatusApproved)

	rr := s.do(t, http.MethodPost, "/v1/customers", ownerToken, map[string]string{"name": "Ram", "contact": "9841111111"})
	checkResponseCode(t, http.StatusCreated, rr.Code)

	t.Run("admin accounts are protected", func(t *testing.T) {
		rr := s.do(t, http.MethodDelete, "/v1/admin/users/"+admin.ID.String(), adminToken, nil)
		checkResponseCode(t, http.StatusForbidden, rr.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		rr := s.do(t, http.MethodDelete, "/v1/admin/users/not-a-uuid", adminToken, nil)
		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("owner and data are removed", func(t *testing.T) {
		rr := s.do(t, http.MethodDelete, "/v1/admin/users/"+owner.ID.String(), adminToken, nil)
		checkResponseCode(t, http.StatusOK, rr.Code)

		var res DeleteAccountResponse
		decodeData(t, rr, &res)
		if res.Message != "User and associated data deleted successfully" || res.Customers != 1 {
			t.Errorf("unexpected delete result %+v", res)
		}

		rr = s.do(t, http.MethodDelete, "/v1/admin/users/"+owner.ID.String(), adminToken, nil)
		checkResponseCode(t, http.StatusNotFound, rr.Code)
	})
}

func TestListAccountsAndStats(t *testing.T) {
	s := newTestServer(t, disabledLimiter)
	_, adminToken := s.seedAccount(t, "admin@cms.local", accounts.RoleAdmin, accounts.StatusApproved)
	s.seedAccount(t, "a@example.com", accounts.RoleUser, accounts.StatusPending)
	s.seedAccount(t, "b@example.com", accounts.RoleUser, accounts.StatusPending)

	rr := s.do(t, http.MethodGet, "/v1/admin/users?status=pending", adminToken, nil)
	checkResponseCode(t, http.StatusOK, rr.Code)

	var list AccountListResponse
	decodeData(t, rr, &list)
	if list.Count != 2 || len(list.Users) != 2 {
		t.Errorf("count = %d, want 2", list.Count)
	}

	rr = s.do(t, http.MethodGet, "/v1/admin/stats", adminToken, nil)
	checkResponseCode(t, http.StatusOK, rr.Code)

	var stats accounts.Stats
	decodeData(t, rr, &stats)
	if stats.Total != 3 || stats.Pending != 2 || stats.Approved != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestBookkeepingRoutes(t *testing.T) {
	s := newTestServer(t, disabledLimiter)
	_, ownerToken := s.seedAccount(t, "owner@example.com", accounts.RoleUser, accounts.StatusApproved)
	_, otherToken := s.seedAccount(t, "other@example.com", accounts.RoleUser, accounts.StatusApproved)

	rr := s.do(t, http.MethodPost, "/v1/customers", ownerToken, map[string]string{"name": "Hari", "contact": "+977 984-1234567"})
	checkResponseCode(t, http.StatusCreated, rr.Code)

	var customer struct {
		ID string `json:"id"`
	}
	decodeData(t, rr, &customer)

	fortyDaysAgo := time.Now().UTC().AddDate(0, 0, -40).Format("2006-01-02")
	rr = s.do(t, http.MethodPost, "/v1/transactions", ownerToken, map[string]any{
		"customerId":  customer.ID,
		"type":        "purchase",
		"amount":      1000,
		"description": "rice and oil",
		"date":        fortyDaysAgo,
	})
	checkResponseCode(t, http.StatusCreated, rr.Code)

	t.Run("other owners cannot see the customer", func(t *testing.T) {
		rr := s.do(t, http.MethodGet, "/v1/customers/"+customer.ID, otherToken, nil)
		checkResponseCode(t, http.StatusNotFound, rr.Code)
	})

	t.Run("other owners cannot record against it", func(t *testing.T) {
		rr := s.do(t, http.MethodPost, "/v1/transactions", otherToken, map[string]any{
			"customerId": customer.ID,
			"type":       "payment",
			"amount":     10,
		})
		checkResponseCode(t, http.StatusNotFound, rr.Code)
	})

	t.Run("customer list filters by balance", func(t *testing.T) {
		rr := s.do(t, http.MethodGet, "/v1/customers?min_balance=500", ownerToken, nil)
		checkResponseCode(t, http.StatusOK, rr.Code)

		var list CustomerListResponse
		decodeData(t, rr, &list)
		if list.Count != 1 || list.Customers[0].BalanceStatus != "Low" {
			t.Errorf("unexpected list %+v", list)
		}

		rr = s.do(t, http.MethodGet, "/v1/customers?min_balance=5000", ownerToken, nil)
		decodeData(t, rr, &list)
		if list.Count != 0 {
			t.Errorf("count = %d, want 0", list.Count)
		}

		rr = s.do(t, http.MethodGet, "/v1/customers?min_balance=lots", ownerToken, nil)
		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("reminders flag the overdue purchase", func(t *testing.T) {
		rr := s.do(t, http.MethodGet, "/v1/reminders", ownerToken, nil)
		checkResponseCode(t, http.StatusOK, rr.Code)

		var rem struct {
			Alerts []struct {
				Severity    string `json:"severity"`
				ReminderURL string `json:"reminderUrl"`
			} `json:"alerts"`
			Total int `json:"total"`
		}
		decodeData(t, rr, &rem)
		if rem.Total != 1 || rem.Alerts[0].Severity != "high" {
			t.Fatalf("unexpected reminders %+v", rem)
		}
		if !strings.HasPrefix(rem.Alerts[0].ReminderURL, "https://wa.me/9779841234567") {
			t.Errorf("reminder url = %q", rem.Alerts[0].ReminderURL)
		}
	})

	t.Run("dashboard", func(t *testing.T) {
		rr := s.do(t, http.MethodGet, "/v1/dashboard", ownerToken, nil)
		checkResponseCode(t, http.StatusOK, rr.Code)

		var sum struct {
			CustomersWithBalance int `json:"customersWithBalance"`
			TotalCustomers       int `json:"totalCustomers"`
		}
		decodeData(t, rr, &sum)
		if sum.CustomersWithBalance != 1 || sum.TotalCustomers != 1 {
			t.Errorf("unexpected summary %+v", sum)
		}
	})

	t.Run("transactions paginate on request", func(t *testing.T) {
		rr := s.do(t, http.MethodGet, "/v1/transactions?limit=1&page=2", ownerToken, nil)
		checkResponseCode(t, http.StatusOK, rr.Code)

		var list TransactionListResponse
		decodeData(t, rr, &list)
		if len(list.Transactions) != 0 || list.Pagination == nil || list.Pagination.Total != 1 {
			t.Errorf("unexpected page %+v", list)
		}
	})

	t.Run("deleting the customer removes its transactions", func(t *testing.T) {
		rr := s.do(t, http.MethodDelete, "/v1/customers/"+customer.ID, ownerToken, nil)
		checkResponseCode(t, http.StatusOK, rr.Code)

		rr = s.do(t, http.MethodGet, "/v1/transactions", ownerToken, nil)
		var list TransactionListResponse
		decodeData(t, rr, &list)
		if len(list.Transactions) != 0 {
			t.Errorf("got %d transactions after cascade", len(list.Transactions))
		}
	})
}

func TestRateLimiterMiddleware(t *testing.T) {
	s := newTestServer(t, ratelimiter.Config{RequestsPerTimeFrame: 2, TimeFrame: time.Minute, Enabled: true})

	body := map[string]string{"email": "nobody@example.com", "password": "whatever1"}
	for i := 0; i < 2; i++ {
		rr := s.do(t, http.MethodPost, "/v1/auth/login", "", body)
		checkResponseCode(t, http.StatusUnauthorized, rr.Code)
	}

	rr := s.do(t, http.MethodPost, "/v1/auth/login", "", body)
	checkResponseCode(t, http.StatusTooManyRequests, rr.Code)
	if rr.Header().Get("Retry-After") == "" {
		t.Error("expected a Retry-After header")
	}
}

func TestOpsEndpoints(t *testing.T) {
	s := newTestServer(t, disabledLimiter)

	tests := []struct {
		name string
		path string
		user string
		pass string
		want int
	}{
		{"health without credentials", "/v1/health", "", "", http.StatusUnauthorized},
		{"health with wrong password", "/v1/health", "ops", "nope", http.StatusUnauthorized},
		{"health", "/v1/health", "ops", "ops-pass", http.StatusOK},
		{"metrics", "/v1/metrics", "ops", "ops-pass", http.StatusOK},
		{"expvar", "/v1/debug/vars", "ops", "ops-pass", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.user != "" {
				req.SetBasicAuth(tt.user, tt.pass)
			}

			rr := httptest.NewRecorder()
			s.handler.ServeHTTP(rr, req)
			checkResponseCode(t, tt.want, rr.Code)
		})
	}
}

func TestListTransactions_OutOfRangePage(t *testing.T) {
	s := newTestServer(t, disabledLimiter)
	_, token := s.seedAccount(t, "owner@example.com", accounts.RoleUser, accounts.StatusApproved)

	for _, query := range []string{"page=92233720368547758&limit=200", "page=9223372036854775807&limit=1"} {
		t.Run(query, func(t *testing.T) {
			rr := s.do(t, http.MethodGet, "/v1/transactions?"+query, token, nil)
			checkResponseCode(t, http.StatusOK, rr.Code)

			var list TransactionListResponse
			decodeData(t, rr, &list)
			if len(list.Transactions) != 0 || list.Pagination == nil || list.Pagination.Offset < 0 {
				t.Errorf("unexpected page %+v", list)
			}
		})
	}
}

func TestLogin_MalformedEmailIsBadRequest(t *testing.T) {
	s := newTestServer(t, disabledLimiter)

	rr := s.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{"email": "not-an-email", "password": "supersecret"})
	checkResponseCode(t, http.StatusBadRequest, rr.Code)
}
