package event

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// SchemaError reports a payload that violates the event schema. Field is the
// path of the offending field ("counterParty.name" style), empty when the
// body itself could not be decoded.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return "schema violation: " + e.Reason
	}
	return fmt.Sprintf("schema violation: field %q: %s", e.Field, e.Reason)
}

// DecodeOperationFeed decodes a raw operation-feed body into a typed record.
// Declared field names are matched byte-exactly (case-sensitive); unknown
// keys at any level are dropped. A wrong-typed value or a missing operationId
// yields a *SchemaError naming the field.
func DecodeOperationFeed(body []byte) (*OperationFeedEvent, error) {
	d, err := newBodyDecoder(body)
	if err != nil {
		return nil, err
	}
	evt := &OperationFeedEvent{
		OperationID:                  d.requiredString("operationId"),
		TypeOfOperation:              d.optString("typeOfOperation"),
		AccountNumber:                d.optString("accountNumber"),
		DocumentNumber:               d.optString("documentNumber"),
		OperationAmount:              d.optString("operationAmount"),
		OperationCurrencyDigitalCode: d.optString("operationCurrencyDigitalCode"),
		AccountAmount:                d.optString("accountAmount"),
		AccountCurrencyDigitalCode:   d.optString("accountCurrencyDigitalCode"),
		RubleAmount:                  d.optString("rubleAmount"),
		CounterParty:                 decodeCounterParty(d, "counterParty"),
		Description:                  d.optString("description"),
		AuthorizationDate:            d.optString("authorizationDate"),
		TrxnPostDate:                 d.optString("trxnPostDate"),
		PayVo:                        d.optString("payVo"),
		Priority:                     d.optString("priority"),
		CardNumber:                   d.optString("cardNumber"),
		UCID:                         d.optString("ucid"),
		MCC:                          d.optString("mcc"),
		Merch:                        decodeMerch(d, "merch"),
		AcquirerID:                   d.optString("acquirerId"),
		Status:                       d.optString("status"),
		OperationStatus:              d.optString("operationStatus"),
		BIC:                          d.optString("bic"),
		RRN:                          d.optString("rrn"),
		Category:                     d.optString("category"),
		PayPurpose:                   d.optString("payPurpose"),
		Receiver:                     decodeReceiver(d, "receiver"),
		Payer:                        decodePayer(d, "payer"),
		DrawDate:                     d.optString("drawDate"),
		ChargeDate:                   d.optString("chargeDate"),
		KBK:                          d.optString("kbk"),
		OKTMO:                        d.optString("oktmo"),
		TaxEvidence:                  d.optString("taxEvidence"),
		TaxPeriod:                    d.optString("taxPeriod"),
		TaxDocNumber:                 d.optString("taxDocNumber"),
		TaxDocDate:                   d.optString("taxDocDate"),
		NalType:                      d.optString("nalType"),
		DocDate:                      d.optString("docDate"),
		VO:                           d.optString("VO"),
	}
	if d.err != nil {
		return nil, d.err
	}
	return evt, nil
}

// DecodePaymentStatus decodes a raw payment-status body into a typed record.
func DecodePaymentStatus(body []byte) (*PaymentStatusEvent, error) {
	d, err := newBodyDecoder(body)
	if err != nil {
		return nil, err
	}
	evt := &PaymentStatusEvent{
		PaymentID:   d.requiredString("paymentId"),
		Status:      d.optString("status"),
		Description: d.optString("description"),
	}
	if d.err != nil {
		return nil, d.err
	}
	return evt, nil
}

func decodeCounterParty(parent *objectDecoder, key string) *CounterParty {
	d := parent.nested(key)
	if d == nil {
		return nil
	}
	cp := &CounterParty{
		Account:       d.optString("account"),
		BankBic:       d.optString("bankBic"),
		BankName:      d.optString("bankName"),
		BankSwiftCode: d.optString("bankSwiftCode"),
		CorrAccount:   d.optString("corrAccount"),
		INN:           d.optString("inn"),
		KPP:           d.optString("kpp"),
		Name:          d.optString("name"),
	}
	if d.err != nil {
		parent.err = d.err
		return nil
	}
	return cp
}

func decodeMerch(parent *objectDecoder, key string) *Merch {
	d := parent.nested(key)
	if d == nil {
		return nil
	}
	m := &Merch{
		ID:      d.optString("id"),
		Address: d.optString("address"),
		City:    d.optString("city"),
		Country: d.optString("country"),
		Index:   d.optString("index"),
		Name:    d.optString("name"),
	}
	if d.err != nil {
		parent.err = d.err
		return nil
	}
	return m
}

func decodeReceiver(parent *objectDecoder, key string) *Receiver {
	d := parent.nested(key)
	if d == nil {
		return nil
	}
	r := &Receiver{
		Account:     d.optString("account"),
		Name:        d.optString("name"),
		INN:         d.optString("inn"),
		KPP:         d.optString("kpp"),
		BIC:         d.optString("bic"),
		CorrAccount: d.optString("corrAccount"),
		BankName:    d.optString("bankName"),
	}
	if d.err != nil {
		parent.err = d.err
		return nil
	}
	return r
}

func decodePayer(parent *objectDecoder, key string) *Payer {
	d := parent.nested(key)
	if d == nil {
		return nil
	}
	p := &Payer{
		Account:     d.optString("account"),
		Name:        d.optString("name"),
		INN:         d.optString("inn"),
		KPP:         d.optString("kpp"),
		BIC:         d.optString("bic"),
		CorrAccount: d.optString("corrAccount"),
		BankName:    d.optString("bankName"),
	}
	if d.err != nil {
		parent.err = d.err
		return nil
	}
	return p
}

// objectDecoder walks one JSON object level as an untyped key to raw-value
// mapping. Declared keys are looked up byte-exactly, so a wrongly-cased key
// is an unknown key and is dropped (encoding/json struct decoding would
// match it case-insensitively). The first schema violation sticks and
// subsequent lookups are no-ops.
type objectDecoder struct {
	obj  map[string]json.RawMessage
	path string
	err  error
}

func newBodyDecoder(body []byte) (*objectDecoder, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &SchemaError{Reason: "body must be a JSON object"}
		}
		return nil, &SchemaError{Reason: "malformed JSON body"}
	}
	return &objectDecoder{obj: obj}, nil
}

// optString returns the exact-key string value, nil when the key is absent or
// explicitly null.
func (d *objectDecoder) optString(key string) *string {
	if d.err != nil {
		return nil
	}
	raw, ok := d.obj[key]
	if !ok || isNull(raw) {
		return nil
	}
	var s string
	if json.Unmarshal(raw, &s) != nil {
		d.err = &SchemaError{Field: d.join(key), Reason: "expected string, got " + jsonKind(raw)}
		return nil
	}
	return &s
}

func (d *objectDecoder) requiredString(key string) string {
	s := d.optString(key)
	if d.err != nil {
		return ""
	}
	if s == nil || *s == "" {
		d.err = &SchemaError{Field: d.join(key), Reason: "required, must be a non-empty string"}
		return ""
	}
	return *s
}

// nested descends into an optional sub-record, returning nil when the key is
// absent or null.
func (d *objectDecoder) nested(key string) *objectDecoder {
	if d.err != nil {
		return nil
	}
	raw, ok := d.obj[key]
	if !ok || isNull(raw) {
		return nil
	}
	var obj map[string]json.RawMessage
	if json.Unmarshal(raw, &obj) != nil {
		d.err = &SchemaError{Field: d.join(key), Reason: "expected object, got " + jsonKind(raw)}
		return nil
	}
	return &objectDecoder{obj: obj, path: d.join(key)}
}

func (d *objectDecoder) join(key string) string {
	if d.path == "" {
		return key
	}
	return d.path + "." + key
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func jsonKind(raw json.RawMessage) string {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 {
		return "empty value"
	}
	switch b[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	default:
		return "number"
	}
}
