package ledger

import (
	"encoding/json"
	"fmt"
)

const SERVICE_NAME string = "odoo-ledger"

const (
	ModelMove     = "account.move"
	ModelMoveLine = "account.move.line"
	ModelAccount  = "account.account"
	ModelPartner  = "res.partner"
)

type rpcRequest struct {
	Jsonrpc string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int64     `json:"id"`
}

type rpcParams struct {
	Service string `json:"service"`
	Method  string `json:"method"`
	Args    []any  `json:"args"`
}

type rpcErrorData struct {
	Name          string `json:"name"`
	Message       string `json:"message"`
	ExceptionType string `json:"exception_type"`
}

type rpcError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    rpcErrorData `json:"data"`
}

func (e rpcError) Error() string {
	if e.Data.Message != "" {
		return fmt.Sprintf("ledger rpc error %d: %s: %s", e.Code, e.Message, e.Data.Message)
	}
	return fmt.Sprintf("ledger rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// Many2One is how the ledger serializes a relation field: a [id, label]
// tuple when set, the literal false when empty.
type Many2One struct {
	ID   int64
	Name string
}

func (m *Many2One) UnmarshalJSON(b []byte) error {
	var tuple []any
	if err := json.Unmarshal(b, &tuple); err == nil {
		if len(tuple) > 0 {
			if id, ok := tuple[0].(float64); ok {
				m.ID = int64(id)
			}
		}
		if len(tuple) > 1 {
			if name, ok := tuple[1].(string); ok {
				m.Name = name
			}
		}
		return nil
	}

	// false means the relation is unset
	var unset bool
	if err := json.Unmarshal(b, &unset); err == nil {
		*m = Many2One{}
		return nil
	}

	var id int64
	if err := json.Unmarshal(b, &id); err == nil {
		m.ID = id
		return nil
	}

	return fmt.Errorf("unexpected many2one payload: %s", string(b))
}

func (m Many2One) IsZero() bool {
	return m.ID == 0
}

// NullableString decodes a char field, which the ledger returns as false
// when the column is NULL. Null stays observable so callers can repair
// lines the reconcile call would otherwise choke on.
type NullableString struct {
	Value string
	Null  bool
}

func (s *NullableString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		s.Value = str
		return nil
	}

	var unset bool
	if err := json.Unmarshal(b, &unset); err == nil {
		*s = NullableString{Null: true}
		return nil
	}

	return fmt.Errorf("unexpected char payload: %s", string(b))
}

func (s NullableString) String() string {
	return s.Value
}

// MoveLine is one journal item of a posted move.
type MoveLine struct {
	ID         int64          `json:"id"`
	Name       NullableString `json:"name"`
	Debit      float64        `json:"debit"`
	Credit     float64        `json:"credit"`
	AccountID  Many2One       `json:"account_id"`
	PartnerID  Many2One       `json:"partner_id"`
	Reconciled bool           `json:"reconciled"`
}

// Balance is debit minus credit, the side the line sits on.
func (l MoveLine) Balance() float64 {
	return l.Debit - l.Credit
}

type Account struct {
	ID          int64  `json:"id"`
	AccountType string `json:"account_type"`
}

type Partner struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
