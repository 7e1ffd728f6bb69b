package admin

import (
	"encoding/json"
	"testing"
	"time"

	"bolao-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestListWithFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM payments WHERE status = \?`).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(int64(1), "pending").
			AddRow(int64(2), "pending"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM payments WHERE status = \?`).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	g := Gateway{DB: db}
	res, err := g.Execute(Request{
		Action:  ActionList,
		Table:   "payments",
		Filters: []Filter{{Column: "status", Operator: "eq", Value: "pending"}},
	}, Caller{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	rows, ok := res.Data.([]map[string]any)
	if !ok || len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %#v", res.Data)
	}
	if rows[0]["status"] != "pending" {
		t.Fatalf("row content mismatch: %#v", rows[0])
	}
	if res.Count == nil || *res.Count != 2 {
		t.Fatalf("count mismatch: %v", res.Count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListAppliesOrderAndWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM matches ORDER BY kickoff_at DESC LIMIT 40, 20`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM matches`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	offset := 40
	g := Gateway{DB: db}
	_, err = g.Execute(Request{
		Action:  ActionList,
		Table:   "matches",
		OrderBy: &OrderBy{Column: "kickoff_at"},
		Offset:  &offset,
	}, Caller{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetZeroRowsIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM teams WHERE id = \? LIMIT 2`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	g := Gateway{DB: db}
	_, err = g.Execute(Request{Action: ActionGet, Table: "teams", ID: 99}, Caller{})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestUpdateStampsUpdatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	wantISO := "2026-03-01T12:00:00Z"

	mock.ExpectExec(`UPDATE payments SET amount = \?, updated_at = \? WHERE id = \?`).
		WithArgs(float64(150), wantISO, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM payments WHERE id = \? LIMIT 1`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "updated_at"}).
			AddRow(int64(7), 150.0, wantISO))

	g := Gateway{DB: db, Now: fixedClock(fixed)}
	res, err := g.Execute(Request{
		Action: ActionUpdate,
		Table:  "payments",
		ID:     7,
		Data:   json.RawMessage(`{"amount": 150}`),
	}, Caller{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	row, ok := res.Data.(map[string]any)
	if !ok || row["updated_at"] != wantISO {
		t.Fatalf("updated row mismatch: %#v", res.Data)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteReturnsSuccessOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM notifications WHERE id = \?`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	g := Gateway{DB: db}
	res, err := g.Execute(Request{Action: ActionDelete, Table: "notifications", ID: 3}, Caller{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !res.Success || res.Data != nil {
		t.Fatalf("expected bare success, got %#v", res)
	}
}

func TestCreateReturnsCreatedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`INSERT INTO teams \(name\) VALUES \(\?\)`).
		WithArgs("Flamengo").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectQuery(`SELECT \* FROM teams WHERE id = \? LIMIT 1`).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(11), "Flamengo"))

	g := Gateway{DB: db}
	res, err := g.Execute(Request{
		Action: ActionCreate,
		Table:  "teams",
		Data:   json.RawMessage(`{"name":"Flamengo"}`),
	}, Caller{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	row, ok := res.Data.(map[string]any)
	if !ok || row["id"] != int64(11) {
		t.Fatalf("created row mismatch: %#v", res.Data)
	}
}

func TestUpsertManyRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`INSERT INTO predictions \(id, score\) VALUES \(\?,\?\), \(\?,\?\) ON DUPLICATE KEY UPDATE score = VALUES\(score\)`).
		WithArgs(float64(1), float64(3), float64(2), float64(0)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(`SELECT \* FROM predictions WHERE id IN \(\?,\?\)`).
		WithArgs(float64(1), float64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "score"}).
			AddRow(int64(1), int64(3)).
			AddRow(int64(2), int64(0)))

	g := Gateway{DB: db}
	res, err := g.Execute(Request{
		Action: ActionUpsert,
		Table:  "predictions",
		Data:   json.RawMessage(`[{"id":1,"score":3},{"id":2,"score":0}]`),
	}, Caller{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	rows, ok := res.Data.([]map[string]any)
	if !ok || len(rows) != 2 {
		t.Fatalf("expected 2 affected rows, got %#v", res.Data)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApprovePaymentStampsAdminAndIsReplayable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Minute)
	caller := Caller{ID: 9, Name: "Ana Souza", Role: "admin"}

	mock.ExpectExec(`UPDATE payments SET status = \?, admin_id = \?, admin_name = \?, processed_at = \?, updated_at = \? WHERE id = \?`).
		WithArgs("approved", int64(9), "Ana Souza", "2026-03-01T12:00:00Z", "2026-03-01T12:00:00Z", 42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE payments SET status = \?, admin_id = \?, admin_name = \?, processed_at = \?, updated_at = \? WHERE id = \?`).
		WithArgs("approved", int64(9), "Ana Souza", "2026-03-01T12:02:00Z", "2026-03-01T12:02:00Z", 42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	g := Gateway{DB: db, Now: fixedClock(first)}
	res, err := g.Execute(Request{Action: ActionApprovePayment, Table: "payments", ID: 42}, caller)
	if err != nil || !res.Success {
		t.Fatalf("first approve failed: %v %#v", err, res)
	}

	// replay: segunda aprovação sobrescreve o timestamp
	g.Now = fixedClock(second)
	res, err = g.Execute(Request{Action: ActionApprovePayment, Table: "payments", ID: 42}, caller)
	if err != nil || !res.Success {
		t.Fatalf("replay approve failed: %v %#v", err, res)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRejectPaymentStampsReason(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE payments SET status = \?, admin_id = \?, admin_name = \?, rejection_reason = \?, processed_at = \?, updated_at = \? WHERE id = \?`).
		WithArgs("rejected", int64(9), "Ana Souza", "comprovante ilegível", "2026-03-01T12:00:00Z", "2026-03-01T12:00:00Z", 42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	g := Gateway{DB: db, Now: fixedClock(fixed)}
	res, err := g.Execute(Request{
		Action:          ActionRejectPayment,
		Table:           "payments",
		ID:              42,
		RejectionReason: "comprovante ilegível",
	}, Caller{ID: 9, Name: "Ana Souza", Role: "admin"})
	if err != nil || !res.Success {
		t.Fatalf("reject failed: %v %#v", err, res)
	}
}

func TestDepositTransitions(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	iso := "2026-03-01T12:00:00Z"

	mock.ExpectExec(`UPDATE deposits SET status = \?, confirmed_at = \?, updated_at = \? WHERE id = \?`).
		WithArgs("confirmed", iso, iso, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE deposits SET status = \?, cancelled_at = \?, notes = \?, updated_at = \? WHERE id = \?`).
		WithArgs("cancelled", iso, "valor divergente", iso, 6).
		WillReturnResult(sqlmock.NewResult(0, 1))

	g := Gateway{DB: db, Now: fixedClock(fixed)}
	if _, err := g.Execute(Request{Action: ActionApproveDeposit, Table: "deposits", ID: 5}, Caller{}); err != nil {
		t.Fatalf("approve deposit failed: %v", err)
	}
	if _, err := g.Execute(Request{Action: ActionRejectDeposit, Table: "deposits", ID: 6, Notes: "valor divergente"}, Caller{}); err != nil {
		t.Fatalf("reject deposit failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUnknownActionTouchesNothing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	g := Gateway{DB: db}
	_, err = g.Execute(Request{Action: "promote", Table: "payments"}, Caller{})
	if !domain.IsUnknownAction(err) {
		t.Fatalf("expected UnknownAction, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store should not be touched: %v", err)
	}
}

func TestInvalidTableRejectedBeforeDispatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	g := Gateway{DB: db}
	for _, action := range []string{ActionList, ActionGet, ActionCreate, ActionDelete, ActionApprovePayment} {
		_, err := g.Execute(Request{Action: action, Table: "secrets", ID: 1, Data: json.RawMessage(`{"a":1}`)}, Caller{})
		if !domain.IsInvalidTable(err) {
			t.Fatalf("action %s: expected InvalidTable, got %v", action, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("store should not be touched: %v", err)
	}
}
