package admin

import (
	"encoding/json"

	"bolao-backend/internal/domain"
)

// Action names accepted by the dispatcher.
const (
	ActionList           = "list"
	ActionGet            = "get"
	ActionCreate         = "create"
	ActionUpdate         = "update"
	ActionDelete         = "delete"
	ActionUpsert         = "upsert"
	ActionApprovePayment = "approve_payment"
	ActionRejectPayment  = "reject_payment"
	ActionApproveDeposit = "approve_deposit"
	ActionRejectDeposit  = "reject_deposit"
)

// Filter is one AND-conjunct applied to the target table.
type Filter struct {
	Column   string `json:"column"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// OrderBy selects a single-column sort. Ascending defaults to false.
type OrderBy struct {
	Column    string `json:"column"`
	Ascending *bool  `json:"ascending"`
}

// Request is the generic payload of POST /api/admin/crud.
type Request struct {
	Action   string          `json:"action"`
	Table    string          `json:"table"`
	Data     json.RawMessage `json:"data"`
	Filters  []Filter        `json:"filters"`
	Select   string          `json:"select"`
	OrderBy  *OrderBy        `json:"orderBy"`
	Limit    *int            `json:"limit"`
	Offset   *int            `json:"offset"`
	ID       any             `json:"id"`
	IDColumn string          `json:"idColumn"`

	OnConflict      string `json:"onConflict"`
	RejectionReason string `json:"rejection_reason"`
	Notes           string `json:"notes"`
}

// dataRows accepts either a single JSON object or an array of objects in
// "data" and normalizes to a slice.
func (r Request) dataRows() ([]map[string]any, error) {
	if len(r.Data) == 0 {
		return nil, domain.ValidationError{Field: "data", Msg: "obrigatório"}
	}

	var many []map[string]any
	if err := json.Unmarshal(r.Data, &many); err == nil {
		if len(many) == 0 {
			return nil, domain.ValidationError{Field: "data", Msg: "lista vazia"}
		}
		return many, nil
	}

	var one map[string]any
	if err := json.Unmarshal(r.Data, &one); err != nil {
		return nil, domain.ValidationError{Field: "data", Msg: "objeto JSON inválido", Err: err}
	}
	if len(one) == 0 {
		return nil, domain.ValidationError{Field: "data", Msg: "objeto vazio"}
	}
	return []map[string]any{one}, nil
}

// singleRow is dataRows constrained to exactly one object (create/update).
func (r Request) singleRow() (map[string]any, error) {
	rows, err := r.dataRows()
	if err != nil {
		return nil, err
	}
	if len(rows) != 1 {
		return nil, domain.ValidationError{Field: "data", Msg: "esperado um único objeto"}
	}
	return rows[0], nil
}

func (r Request) idColumn() string {
	if r.IDColumn != "" {
		return r.IDColumn
	}
	return "id"
}

func (r Request) conflictColumn() string {
	if r.OnConflict != "" {
		return r.OnConflict
	}
	return "id"
}
