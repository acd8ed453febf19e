// Package memory is an in-process implementation of the domain stores. It
// backs unit tests and behaves like the postgres repositories: same sentinel
// errors, same ordering, case-insensitive unique emails.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"paytrack/internal/domain/accounts"
	"paytrack/internal/domain/customers"
	"paytrack/internal/domain/storage"
	"paytrack/internal/domain/transactions"

	"github.com/google/uuid"
)

type DB struct {
	mu           sync.Mutex
	seq          int64
	accounts     map[uuid.UUID]accountRow
	customers    map[uuid.UUID]customerRow
	transactions map[uuid.UUID]transactionRow

	// Fail, when set, is consulted before every store call. A non-nil
	// return aborts the call with that error.
	Fail func(op string) error

	// Now stamps created_at. Defaults to time.Now.
	Now func() time.Time
}

type accountRow struct {
	seq int64
	accounts.Account
}

type customerRow struct {
	seq int64
	customers.Customer
}

type transactionRow struct {
	seq int64
	transactions.Transaction
}

func New() *DB {
	return &DB{
		accounts:     make(map[uuid.UUID]accountRow),
		customers:    make(map[uuid.UUID]customerRow),
		transactions: make(map[uuid.UUID]transactionRow),
		Now:          time.Now,
	}
}

func (d *DB) Accounts() accounts.Store         { return &accountStore{d} }
func (d *DB) Customers() customers.Store       { return &customerStore{d} }
func (d *DB) Transactions() transactions.Store { return &transactionStore{d} }

var _ storage.Runner = (*DB)(nil)

// WithTx snapshots the tables, runs fn and restores the snapshot when fn
// fails. Concurrent writers are not isolated from each other.
func (d *DB) WithTx(ctx context.Context, fn func(s *storage.Tx) error) error {
	d.mu.Lock()
	snapAccounts := cloneMap(d.accounts)
	snapCustomers := cloneMap(d.customers)
	snapTransactions := cloneMap(d.transactions)
	d.mu.Unlock()

	err := fn(&storage.Tx{
		Accounts:     d.Accounts(),
		Customers:    d.Customers(),
		Transactions: d.Transactions(),
	})
	if err != nil {
		d.mu.Lock()
		d.accounts = snapAccounts
		d.customers = snapCustomers
		d.transactions = snapTransactions
		d.mu.Unlock()
	}
	return err
}

// Counts reports the number of rows per table.
func (d *DB) Counts() (nAccounts, nCustomers, nTransactions int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.accounts), len(d.customers), len(d.transactions)
}

func (d *DB) check(op string) error {
	if d.Fail == nil {
		return nil
	}
	return d.Fail(op)
}

func (d *DB) next() int64 {
	d.seq++
	return d.seq
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type accountStore struct{ d *DB }

var _ accounts.Store = (*accountStore)(nil)

func (s *accountStore) Create(ctx context.Context, a *accounts.Account) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("accounts.Create"); err != nil {
		return err
	}

	email := accounts.NormalizeEmail(a.Email)
	for _, row := range s.d.accounts {
		if row.Email == email {
			return accounts.ErrDuplicateEmail
		}
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.Email = email
	a.CreatedAt = s.d.Now()

	s.d.accounts[a.ID] = accountRow{seq: s.d.next(), Account: *a}
	return nil
}

func (s *accountStore) GetByID(ctx context.Context, id uuid.UUID) (*accounts.Account, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("accounts.GetByID"); err != nil {
		return nil, err
	}

	row, ok := s.d.accounts[id]
	if !ok {
		return nil, accounts.ErrNotFound
	}
	a := row.Account
	return &a, nil
}

func (s *accountStore) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("accounts.GetByEmail"); err != nil {
		return nil, err
	}

	email = accounts.NormalizeEmail(email)
	for _, row := range s.d.accounts {
		if row.Email == email {
			a := row.Account
			return &a, nil
		}
	}
	return nil, accounts.ErrNotFound
}

func (s *accountStore) List(ctx context.Context, status accounts.Status) ([]accounts.Account, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("accounts.List"); err != nil {
		return nil, err
	}

	rows := make([]accountRow, 0, len(s.d.accounts))
	for _, row := range s.d.accounts {
		if status == "" || row.Status == status {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})

	out := make([]accounts.Account, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Account)
	}
	return out, nil
}

func (s *accountStore) Stats(ctx context.Context) (*accounts.Stats, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("accounts.Stats"); err != nil {
		return nil, err
	}

	st := &accounts.Stats{Total: int64(len(s.d.accounts))}
	for _, row := range s.d.accounts {
		switch row.Status {
		case accounts.StatusPending:
			st.Pending++
		case accounts.StatusApproved:
			st.Approved++
		case accounts.StatusRejected:
			st.Rejected++
		}
	}
	return st, nil
}

func (s *accountStore) UpdateStatus(ctx context.Context, id uuid.UUID, status accounts.Status) (*accounts.Account, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("accounts.UpdateStatus"); err != nil {
		return nil, err
	}

	row, ok := s.d.accounts[id]
	if !ok {
		return nil, accounts.ErrNotFound
	}
	row.Status = status
	s.d.accounts[id] = row

	a := row.Account
	return &a, nil
}

func (s *accountStore) UpdatePassword(ctx context.Context, a *accounts.Account) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("accounts.UpdatePassword"); err != nil {
		return err
	}

	row, ok := s.d.accounts[a.ID]
	if !ok {
		return accounts.ErrNotFound
	}
	row.Password = a.Password
	s.d.accounts[a.ID] = row
	return nil
}

func (s *accountStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("accounts.Delete"); err != nil {
		return err
	}

	if _, ok := s.d.accounts[id]; !ok {
		return accounts.ErrNotFound
	}
	delete(s.d.accounts, id)
	return nil
}

type customerStore struct{ d *DB }

var _ customers.Store = (*customerStore)(nil)

func (s *customerStore) Create(ctx context.Context, c *customers.Customer) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("customers.Create"); err != nil {
		return err
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = s.d.Now()

	s.d.customers[c.ID] = customerRow{seq: s.d.next(), Customer: *c}
	return nil
}

func (s *customerStore) GetByID(ctx context.Context, id uuid.UUID) (*customers.Customer, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("customers.GetByID"); err != nil {
		return nil, err
	}

	row, ok := s.d.customers[id]
	if !ok {
		return nil, customers.ErrNotFound
	}
	c := row.Customer
	return &c, nil
}

func (s *customerStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]customers.Customer, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("customers.ListByUser"); err != nil {
		return nil, err
	}

	rows := make([]customerRow, 0)
	for _, row := range s.d.customers {
		if row.UserID == userID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := make([]customers.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Customer)
	}
	return out, nil
}

func (s *customerStore) Update(ctx context.Context, c *customers.Customer) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("customers.Update"); err != nil {
		return err
	}

	row, ok := s.d.customers[c.ID]
	if !ok {
		return customers.ErrNotFound
	}
	row.Name, row.Contact, row.Email = c.Name, c.Contact, c.Email
	s.d.customers[c.ID] = row
	return nil
}

func (s *customerStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("customers.Delete"); err != nil {
		return err
	}

	if _, ok := s.d.customers[id]; !ok {
		return customers.ErrNotFound
	}
	delete(s.d.customers, id)
	return nil
}

func (s *customerStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("customers.DeleteByUser"); err != nil {
		return 0, err
	}

	var n int64
	for id, row := range s.d.customers {
		if row.UserID == userID {
			delete(s.d.customers, id)
			n++
		}
	}
	return n, nil
}

type transactionStore struct{ d *DB }

var _ transactions.Store = (*transactionStore)(nil)

func (s *transactionStore) Create(ctx context.Context, t *transactions.Transaction) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("transactions.Create"); err != nil {
		return err
	}

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	s.d.transactions[t.ID] = transactionRow{seq: s.d.next(), Transaction: *t}
	return nil
}

func (s *transactionStore) GetByID(ctx context.Context, id uuid.UUID) (*transactions.Transaction, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("transactions.GetByID"); err != nil {
		return nil, err
	}

	row, ok := s.d.transactions[id]
	if !ok {
		return nil, transactions.ErrNotFound
	}
	t := row.Transaction
	return &t, nil
}

func (s *transactionStore) list(op string, keep func(t transactions.Transaction) bool) ([]transactions.Transaction, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check(op); err != nil {
		return nil, err
	}

	rows := make([]transactionRow, 0)
	for _, row := range s.d.transactions {
		if keep(row.Transaction) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return rows[i].seq < rows[j].seq
	})

	out := make([]transactions.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Transaction)
	}
	return out, nil
}

func (s *transactionStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]transactions.Transaction, error) {
	return s.list("transactions.ListByUser", func(t transactions.Transaction) bool { return t.UserID == userID })
}

func (s *transactionStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]transactions.Transaction, error) {
	return s.list("transactions.ListByCustomer", func(t transactions.Transaction) bool { return t.CustomerID == customerID })
}

func (s *transactionStore) Update(ctx context.Context, t *transactions.Transaction) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("transactions.Update"); err != nil {
		return err
	}

	row, ok := s.d.transactions[t.ID]
	if !ok {
		return transactions.ErrNotFound
	}
	row.Amount, row.Description, row.Date, row.DueDate = t.Amount, t.Description, t.Date, t.DueDate
	s.d.transactions[t.ID] = row
	return nil
}

func (s *transactionStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check("transactions.Delete"); err != nil {
		return err
	}

	if _, ok := s.d.transactions[id]; !ok {
		return transactions.ErrNotFound
	}
	delete(s.d.transactions, id)
	return nil
}

func (s *transactionStore) deleteWhere(op string, match func(t transactions.Transaction) bool) (int64, error) {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if err := s.d.check(op); err != nil {
		return 0, err
	}

	var n int64
	for id, row := range s.d.transactions {
		if match(row.Transaction) {
			delete(s.d.transactions, id)
			n++
		}
	}
	return n, nil
}

func (s *transactionStore) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return s.deleteWhere("transactions.DeleteByCustomer", func(t transactions.Transaction) bool { return t.CustomerID == customerID })
}

func (s *transactionStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.deleteWhere("transactions.DeleteByUser", func(t transactions.Transaction) bool { return t.UserID == userID })
}
