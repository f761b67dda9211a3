package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"tracker/internal/core"
	"tracker/internal/store"
)

type transactionRequest struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type transactionRow struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	DateDisplay string `json:"date_display"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Display     string `json:"display"`
}

type summaryResponse struct {
	TotalIncome  string         `json:"total_income"`
	TotalExpense string         `json:"total_expense"`
	Balance      string         `json:"balance"`
	MonthExpense string         `json:"month_expense"`
	Count        int            `json:"count"`
	TopCategory  string         `json:"top_category,omitempty"`
	LastAmount   string         `json:"last_amount,omitempty"`
	ByCategory   []categoryItem `json:"by_category,omitempty"`
}

type categoryItem struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

func toRow(tx core.Transaction) transactionRow {
	return transactionRow{
		ID:          tx.ID,
		Date:        tx.Date.ISO(),
		DateDisplay: tx.Date.Display(),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Description: tx.Description,
		Amount:      tx.Amount.Decimal(),
		Display:     formatRupees(tx.Amount.Cents),
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sum := s.ctrl.Summary()
	resp := summaryResponse{
		TotalIncome:  formatRupees(sum.TotalIncome.Cents),
		TotalExpense: formatRupees(sum.TotalExpense.Cents),
		Balance:      formatRupees(sum.Balance.Cents),
		MonthExpense: formatRupees(sum.MonthExpense.Cents),
		Count:        sum.Count,
		TopCategory:  sum.TopCategory,
	}
	if sum.LastAmount != nil {
		resp.LastAmount = formatRupees(sum.LastAmount.Cents)
	}
	for _, ca := range sum.ByCategory {
		resp.ByCategory = append(resp.ByCategory, categoryItem{Name: ca.Name, Amount: formatRupees(ca.Amount.Cents)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	filter := strings.TrimSpace(r.URL.Query().Get("category"))
	rows := make([]transactionRow, 0)
	for _, tx := range s.ctrl.Ledger(filter) {
		rows = append(rows, toRow(tx))
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := core.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	typ, err := core.ParseTransactionType(req.Type)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	id, err := s.ctrl.AddTransaction(r.Context(), date, typ, req.Category, req.Description, core.Money{Cents: cents})
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to add transaction", "error", err)
		writeError(w, statusForError(err), err.Error())
		return
	}

	tx, err := s.ctrl.GetTransaction(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Added transaction not readable", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, toRow(tx))
}

func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Path, "/api/transactions/")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		tx, err := s.ctrl.GetTransaction(r.Context(), id)
		if err != nil {
			writeError(w, statusForError(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toRow(tx))

	case http.MethodPut:
		var req transactionPatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		patch, err := buildPatch(req)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if err := s.ctrl.EditTransaction(r.Context(), id, patch); err != nil {
			slog.ErrorContext(r.Context(), "Failed to edit transaction", "error", err, "id", id)
			writeError(w, statusForError(err), err.Error())
			return
		}
		tx, err := s.ctrl.GetTransaction(r.Context(), id)
		if err != nil {
			writeError(w, statusForError(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toRow(tx))

	case http.MethodDelete:
		if err := s.ctrl.DeleteTransaction(r.Context(), id); err != nil {
			slog.ErrorContext(r.Context(), "Failed to delete transaction", "error", err, "id", id)
			writeError(w, statusForError(err), err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", "GET, PUT, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// transactionPatchRequest uses pointers so an absent field is left alone
// while an empty one is still an explicit value (description may be cleared).
type transactionPatchRequest struct {
	Date        *string `json:"date"`
	Type        *string `json:"type"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Amount      *string `json:"amount"`
}

// buildPatch turns the provided request fields into a partial update.
func buildPatch(req transactionPatchRequest) (store.Patch, error) {
	var patch store.Patch

	if req.Date != nil {
		date, err := core.ParseDate(strings.TrimSpace(*req.Date))
		if err != nil {
			return store.Patch{}, err
		}
		patch.Date = &date
	}
	if req.Type != nil {
		typ, err := core.ParseTransactionType(*req.Type)
		if err != nil {
			return store.Patch{}, err
		}
		patch.Type = &typ
	}
	patch.Category = req.Category
	patch.Description = req.Description
	if req.Amount != nil {
		cents, err := core.ParseDecimalToCents(*req.Amount)
		if err != nil {
			return store.Patch{}, err
		}
		patch.Amount = &core.Money{Cents: cents}
	}

	return patch, nil
}

type exportRequest struct {
	Path string `json:"path"`
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req exportRequest
	if r.Body != nil {
		// An empty body means "use the default path".
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	path := strings.TrimSpace(req.Path)
	if path == "" {
		path = filepath.Join(s.exportDir, "transactions.csv")
	}

	if err := s.ctrl.ExportCSV(r.Context(), path); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}

// statusForError maps the domain error taxonomy to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrInvalidType),
		errors.Is(err, core.ErrEmptyCategory):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
