package admin

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	intconfig "bolao-backend/internal/config"
	"bolao-backend/internal/domain"
	"bolao-backend/internal/utils"
)

// Caller is the privileged identity resolved by the authorization gate,
// used to stamp audit fields on approve/reject.
type Caller struct {
	ID   int64
	Name string
	Role string
}

// Result is the gateway's terminal outcome before envelope translation.
type Result struct {
	Data    any
	Count   *int64
	Success bool
}

// Gateway executes one ActionRequest against the allow-listed tables.
// DB falls back to the shared connection when unset.
type Gateway struct {
	DB        *sql.DB
	RequestID string
	Now       func() time.Time
}

func (g Gateway) db() *sql.DB {
	if g.DB != nil {
		return g.DB
	}
	return intconfig.DB
}

func (g Gateway) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return utils.NowUTC()
}

func (g Gateway) nowISO() string {
	return g.now().UTC().Format("2006-01-02T15:04:05Z07:00")
}

// Execute validates the table once, then dispatches on the action name.
// Every action is at-most-once, single-statement, no retries.
func (g Gateway) Execute(req Request, caller Caller) (Result, error) {
	if err := ValidateTable(req.Table); err != nil {
		return Result{}, err
	}
	table := strings.TrimSpace(req.Table)

	switch req.Action {
	case ActionList:
		return g.list(table, req)
	case ActionGet:
		return g.get(table, req)
	case ActionCreate:
		return g.create(table, req)
	case ActionUpdate:
		return g.update(table, req)
	case ActionDelete:
		return g.delete(table, req)
	case ActionUpsert:
		return g.upsert(table, req)
	case ActionApprovePayment:
		return g.approvePayment(req, caller)
	case ActionRejectPayment:
		return g.rejectPayment(req, caller)
	case ActionApproveDeposit:
		return g.approveDeposit(req)
	case ActionRejectDeposit:
		return g.rejectDeposit(req)
	default:
		return Result{}, domain.UnknownActionError{Action: req.Action}
	}
}

func (g Gateway) list(table string, req Request) (Result, error) {
	sel, err := selectColumns(req.Select)
	if err != nil {
		return Result{}, err
	}
	where, args, err := BuildWhere(req.Filters)
	if err != nil {
		return Result{}, err
	}
	order, err := BuildOrder(req.OrderBy)
	if err != nil {
		return Result{}, err
	}

	query := "SELECT " + sel + " FROM " + table + where + order + BuildLimit(req.Limit, req.Offset)
	rows, err := g.db().Query(query, args...)
	if err != nil {
		return Result{}, domain.QueryError{Op: "list", Err: err}
	}
	defer rows.Close()

	data, err := scanRows(rows)
	if err != nil {
		return Result{}, domain.QueryError{Op: "list", Err: err}
	}

	var count int64
	if err := g.db().QueryRow("SELECT COUNT(*) FROM "+table+where, args...).Scan(&count); err != nil {
		return Result{}, domain.QueryError{Op: "list", Err: err}
	}

	utils.LogEvent(g.RequestID, "crud", "list", fmt.Sprintf("table=%s rows=%d", table, len(data)))
	return Result{Data: data, Count: &count}, nil
}

func (g Gateway) get(table string, req Request) (Result, error) {
	if req.ID == nil {
		return Result{}, domain.ValidationError{Field: "id", Msg: "obrigatório"}
	}
	idCol := req.idColumn()
	if !validIdent(idCol) {
		return Result{}, domain.ValidationError{Field: "idColumn", Msg: fmt.Sprintf("coluna inválida: %q", idCol)}
	}
	sel, err := selectColumns(req.Select)
	if err != nil {
		return Result{}, err
	}

	// LIMIT 2 para detectar match múltiplo
	rows, err := g.db().Query("SELECT "+sel+" FROM "+table+" WHERE "+idCol+" = ? LIMIT 2", req.ID)
	if err != nil {
		return Result{}, domain.QueryError{Op: "get", Err: err}
	}
	defer rows.Close()

	data, err := scanRows(rows)
	if err != nil {
		return Result{}, domain.QueryError{Op: "get", Err: err}
	}
	switch len(data) {
	case 0:
		return Result{}, domain.NotFoundError{Resource: table}
	case 1:
		return Result{Data: data[0]}, nil
	default:
		return Result{}, domain.QueryError{Op: "get", Err: fmt.Errorf("mais de um registro em %s para %s=%v", table, idCol, req.ID)}
	}
}

func (g Gateway) create(table string, req Request) (Result, error) {
	row, err := req.singleRow()
	if err != nil {
		return Result{}, err
	}
	cols, vals, err := sortedColumns(row)
	if err != nil {
		return Result{}, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",")
	res, err := g.db().Exec("INSERT INTO "+table+" ("+strings.Join(cols, ", ")+") VALUES ("+placeholders+")", vals...)
	if err != nil {
		return Result{}, domain.QueryError{Op: "create", Err: err}
	}

	utils.LogEvent(g.RequestID, "crud", "create", "table="+table)

	// devolve a linha criada
	if id, ok := row["id"]; ok {
		return g.fetchOne(table, "id", id)
	}
	if lastID, err := res.LastInsertId(); err == nil && lastID > 0 {
		return g.fetchOne(table, "id", lastID)
	}
	return Result{Data: row}, nil
}

func (g Gateway) update(table string, req Request) (Result, error) {
	if req.ID == nil {
		return Result{}, domain.ValidationError{Field: "id", Msg: "obrigatório"}
	}
	idCol := req.idColumn()
	if !validIdent(idCol) {
		return Result{}, domain.ValidationError{Field: "idColumn", Msg: fmt.Sprintf("coluna inválida: %q", idCol)}
	}
	row, err := req.singleRow()
	if err != nil {
		return Result{}, err
	}

	// updated_at sempre recebe o horário da requisição
	row["updated_at"] = g.nowISO()
	cols, vals, err := sortedColumns(row)
	if err != nil {
		return Result{}, err
	}

	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = c + " = ?"
	}
	vals = append(vals, req.ID)

	if _, err := g.db().Exec("UPDATE "+table+" SET "+strings.Join(sets, ", ")+" WHERE "+idCol+" = ?", vals...); err != nil {
		return Result{}, domain.QueryError{Op: "update", Err: err}
	}

	utils.LogEvent(g.RequestID, "crud", "update", fmt.Sprintf("table=%s %s=%v", table, idCol, req.ID))
	return g.fetchOne(table, idCol, req.ID)
}

func (g Gateway) delete(table string, req Request) (Result, error) {
	if req.ID == nil {
		return Result{}, domain.ValidationError{Field: "id", Msg: "obrigatório"}
	}
	idCol := req.idColumn()
	if !validIdent(idCol) {
		return Result{}, domain.ValidationError{Field: "idColumn", Msg: fmt.Sprintf("coluna inválida: %q", idCol)}
	}

	if _, err := g.db().Exec("DELETE FROM "+table+" WHERE "+idCol+" = ?", req.ID); err != nil {
		return Result{}, domain.QueryError{Op: "delete", Err: err}
	}

	utils.LogEvent(g.RequestID, "crud", "delete", fmt.Sprintf("table=%s %s=%v", table, idCol, req.ID))
	return Result{Success: true}, nil
}

func (g Gateway) upsert(table string, req Request) (Result, error) {
	rows, err := req.dataRows()
	if err != nil {
		return Result{}, err
	}
	conflict := req.conflictColumn()
	if !validIdent(conflict) {
		return Result{}, domain.ValidationError{Field: "onConflict", Msg: fmt.Sprintf("coluna inválida: %q", conflict)}
	}

	cols, _, err := sortedColumns(rows[0])
	if err != nil {
		return Result{}, err
	}

	rowPlaceholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",") + ")"
	groups := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(cols))
	for i, r := range rows {
		groups[i] = rowPlaceholder
		for _, c := range cols {
			v, err := argValue(r[c])
			if err != nil {
				return Result{}, err
			}
			args = append(args, v)
		}
	}

	updates := make([]string, 0, len(cols))
	for _, c := range cols {
		if c == conflict {
			continue
		}
		updates = append(updates, c+" = VALUES("+c+")")
	}
	if len(updates) == 0 {
		// nada além da chave de conflito: no-op no duplicado
		updates = append(updates, conflict+" = "+conflict)
	}

	query := "INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ") VALUES " +
		strings.Join(groups, ", ") + " ON DUPLICATE KEY UPDATE " + strings.Join(updates, ", ")
	if _, err := g.db().Exec(query, args...); err != nil {
		return Result{}, domain.QueryError{Op: "upsert", Err: err}
	}

	utils.LogEvent(g.RequestID, "crud", "upsert", fmt.Sprintf("table=%s rows=%d", table, len(rows)))

	// relê as linhas afetadas quando todas carregam a chave de conflito
	keys := make([]any, 0, len(rows))
	for _, r := range rows {
		v, ok := r[conflict]
		if !ok || v == nil {
			return Result{Data: rows}, nil
		}
		keys = append(keys, v)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	affected, err := g.db().Query("SELECT * FROM "+table+" WHERE "+conflict+" IN ("+placeholders+")", keys...)
	if err != nil {
		return Result{}, domain.QueryError{Op: "upsert", Err: err}
	}
	defer affected.Close()

	data, err := scanRows(affected)
	if err != nil {
		return Result{}, domain.QueryError{Op: "upsert", Err: err}
	}
	return Result{Data: data}, nil
}

func (g Gateway) approvePayment(req Request, caller Caller) (Result, error) {
	if req.ID == nil {
		return Result{}, domain.ValidationError{Field: "id", Msg: "obrigatório"}
	}
	now := g.nowISO()
	_, err := g.db().Exec(
		"UPDATE payments SET status = ?, admin_id = ?, admin_name = ?, processed_at = ?, updated_at = ? WHERE id = ?",
		"approved", caller.ID, caller.Name, now, now, req.ID,
	)
	if err != nil {
		return Result{}, domain.QueryError{Op: "approve_payment", Err: err}
	}
	utils.LogEvent(g.RequestID, "crud", "approve_payment", fmt.Sprintf("id=%v admin=%d", req.ID, caller.ID))
	return Result{Success: true}, nil
}

func (g Gateway) rejectPayment(req Request, caller Caller) (Result, error) {
	if req.ID == nil {
		return Result{}, domain.ValidationError{Field: "id", Msg: "obrigatório"}
	}
	now := g.nowISO()
	_, err := g.db().Exec(
		"UPDATE payments SET status = ?, admin_id = ?, admin_name = ?, rejection_reason = ?, processed_at = ?, updated_at = ? WHERE id = ?",
		"rejected", caller.ID, caller.Name, req.RejectionReason, now, now, req.ID,
	)
	if err != nil {
		return Result{}, domain.QueryError{Op: "reject_payment", Err: err}
	}
	utils.LogEvent(g.RequestID, "crud", "reject_payment", fmt.Sprintf("id=%v admin=%d", req.ID, caller.ID))
	return Result{Success: true}, nil
}

func (g Gateway) approveDeposit(req Request) (Result, error) {
	if req.ID == nil {
		return Result{}, domain.ValidationError{Field: "id", Msg: "obrigatório"}
	}
	now := g.nowISO()
	_, err := g.db().Exec(
		"UPDATE deposits SET status = ?, confirmed_at = ?, updated_at = ? WHERE id = ?",
		"confirmed", now, now, req.ID,
	)
	if err != nil {
		return Result{}, domain.QueryError{Op: "approve_deposit", Err: err}
	}
	utils.LogEvent(g.RequestID, "crud", "approve_deposit", fmt.Sprintf("id=%v", req.ID))
	return Result{Success: true}, nil
}

func (g Gateway) rejectDeposit(req Request) (Result, error) {
	if req.ID == nil {
		return Result{}, domain.ValidationError{Field: "id", Msg: "obrigatório"}
	}
	now := g.nowISO()
	_, err := g.db().Exec(
		"UPDATE deposits SET status = ?, cancelled_at = ?, notes = ?, updated_at = ? WHERE id = ?",
		"cancelled", now, req.Notes, now, req.ID,
	)
	if err != nil {
		return Result{}, domain.QueryError{Op: "reject_deposit", Err: err}
	}
	utils.LogEvent(g.RequestID, "crud", "reject_deposit", fmt.Sprintf("id=%v", req.ID))
	return Result{Success: true}, nil
}

func (g Gateway) fetchOne(table, idCol string, id any) (Result, error) {
	rows, err := g.db().Query("SELECT * FROM "+table+" WHERE "+idCol+" = ? LIMIT 1", id)
	if err != nil {
		return Result{}, domain.QueryError{Op: "fetch", Err: err}
	}
	defer rows.Close()

	data, err := scanRows(rows)
	if err != nil {
		return Result{}, domain.QueryError{Op: "fetch", Err: err}
	}
	if len(data) == 0 {
		return Result{}, domain.NotFoundError{Resource: table}
	}
	return Result{Data: data[0]}, nil
}

// sortedColumns turns a row map into deterministic column/value slices.
func sortedColumns(row map[string]any) ([]string, []any, error) {
	cols := make([]string, 0, len(row))
	for c := range row {
		if !validIdent(c) {
			return nil, nil, domain.ValidationError{Field: "data", Msg: fmt.Sprintf("coluna inválida: %q", c)}
		}
		cols = append(cols, c)
	}
	sort.Strings(cols)

	vals := make([]any, 0, len(cols))
	for _, c := range cols {
		v, err := argValue(row[c])
		if err != nil {
			return nil, nil, err
		}
		vals = append(vals, v)
	}
	return cols, vals, nil
}

// argValue converts decoded JSON values into driver-friendly args. Nested
// objects/arrays go in as JSON text (colunas JSON do MySQL).
func argValue(v any) (any, error) {
	switch v.(type) {
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, domain.ValidationError{Field: "data", Msg: "valor não serializável", Err: err}
		}
		return string(b), nil
	default:
		return v, nil
	}
}
