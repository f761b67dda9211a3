// Package http is the inbound surface the tracker exposes to its UI: a thin
// JSON API over the controller. No domain logic lives here; handlers parse,
// delegate, and translate errors to status codes.
package http

import (
	"context"
	"net/http"

	"tracker/internal/core"
	"tracker/internal/store"
)

// Controller is the read-write API the handlers bind to.
type Controller interface {
	AddTransaction(ctx context.Context, date core.Date, typ core.TransactionType, category, description string, amount core.Money) (int64, error)
	EditTransaction(ctx context.Context, id int64, patch store.Patch) error
	DeleteTransaction(ctx context.Context, id int64) error
	GetTransaction(ctx context.Context, id int64) (core.Transaction, error)
	ExportCSV(ctx context.Context, path string) error
	Ledger(categoryFilter string) []core.Transaction
	Summary() core.Summary
}

type Server struct {
	ctrl      Controller
	exportDir string
}

// NewServer wires the routes and returns a ready-to-run http.Server.
func NewServer(addr string, ctrl Controller, exportDir string) *http.Server {
	s := &Server{ctrl: ctrl, exportDir: exportDir}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/ledger", s.handleLedger)
	mux.HandleFunc("/api/transactions", s.handleTransactions)
	mux.HandleFunc("/api/transactions/", s.handleTransactionByID)
	mux.HandleFunc("/api/export", s.handleExport)
	mux.HandleFunc("/healthz", s.handleHealth)

	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
