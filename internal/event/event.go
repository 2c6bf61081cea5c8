package event

// Event is a validated webhook notification ready for sink hand-off.
type Event interface {
	// Kind is the wire category of the notification.
	Kind() string
	// ID is the record's own identifier, echoed back in acknowledgments.
	ID() string
}

const (
	KindOperationFeed = "oper-feed-operation"
	KindPaymentStatus = "payment-status"
)

// OperationFeedEvent is a single incoming-payment notification from the
// provider's operation feed. Only operationId is required; every other
// attribute is optional and absent fields stay absent through re-encoding
// (pointer fields with omitempty, never defaulted to empty strings).
type OperationFeedEvent struct {
	OperationID                  string        `json:"operationId"`
	TypeOfOperation              *string       `json:"typeOfOperation,omitempty"`
	AccountNumber                *string       `json:"accountNumber,omitempty"`
	DocumentNumber               *string       `json:"documentNumber,omitempty"`
	OperationAmount              *string       `json:"operationAmount,omitempty"`
	OperationCurrencyDigitalCode *string       `json:"operationCurrencyDigitalCode,omitempty"`
	AccountAmount                *string       `json:"accountAmount,omitempty"`
	AccountCurrencyDigitalCode   *string       `json:"accountCurrencyDigitalCode,omitempty"`
	RubleAmount                  *string       `json:"rubleAmount,omitempty"`
	CounterParty                 *CounterParty `json:"counterParty,omitempty"`
	Description                  *string       `json:"description,omitempty"`
	AuthorizationDate            *string       `json:"authorizationDate,omitempty"`
	TrxnPostDate                 *string       `json:"trxnPostDate,omitempty"`
	PayVo                        *string       `json:"payVo,omitempty"`
	Priority                     *string       `json:"priority,omitempty"`
	CardNumber                   *string       `json:"cardNumber,omitempty"`
	UCID                         *string       `json:"ucid,omitempty"`
	MCC                          *string       `json:"mcc,omitempty"`
	Merch                        *Merch        `json:"merch,omitempty"`
	AcquirerID                   *string       `json:"acquirerId,omitempty"`
	Status                       *string       `json:"status,omitempty"`
	OperationStatus              *string       `json:"operationStatus,omitempty"`
	BIC                          *string       `json:"bic,omitempty"`
	RRN                          *string       `json:"rrn,omitempty"`
	Category                     *string       `json:"category,omitempty"`
	PayPurpose                   *string       `json:"payPurpose,omitempty"`
	Receiver                     *Receiver     `json:"receiver,omitempty"`
	Payer                        *Payer        `json:"payer,omitempty"`
	DrawDate                     *string       `json:"drawDate,omitempty"`
	ChargeDate                   *string       `json:"chargeDate,omitempty"`
	KBK                          *string       `json:"kbk,omitempty"`
	OKTMO                        *string       `json:"oktmo,omitempty"`
	TaxEvidence                  *string       `json:"taxEvidence,omitempty"`
	TaxPeriod                    *string       `json:"taxPeriod,omitempty"`
	TaxDocNumber                 *string       `json:"taxDocNumber,omitempty"`
	TaxDocDate                   *string       `json:"taxDocDate,omitempty"`
	NalType                      *string       `json:"nalType,omitempty"`
	DocDate                      *string       `json:"docDate,omitempty"`
	VO                           *string       `json:"VO,omitempty"`
}

func (e *OperationFeedEvent) Kind() string { return KindOperationFeed }
func (e *OperationFeedEvent) ID() string   { return e.OperationID }

// CounterParty describes the bank entity on the other side of an operation.
type CounterParty struct {
	Account       *string `json:"account,omitempty"`
	BankBic       *string `json:"bankBic,omitempty"`
	BankName      *string `json:"bankName,omitempty"`
	BankSwiftCode *string `json:"bankSwiftCode,omitempty"`
	CorrAccount   *string `json:"corrAccount,omitempty"`
	INN           *string `json:"inn,omitempty"`
	KPP           *string `json:"kpp,omitempty"`
	Name          *string `json:"name,omitempty"`
}

// Merch describes the merchant behind a card operation.
type Merch struct {
	ID      *string `json:"id,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	Country *string `json:"country,omitempty"`
	Index   *string `json:"index,omitempty"`
	Name    *string `json:"name,omitempty"`
}

// Receiver describes the receiving party of a payment.
type Receiver struct {
	Account     *string `json:"account,omitempty"`
	Name        *string `json:"name,omitempty"`
	INN         *string `json:"inn,omitempty"`
	KPP         *string `json:"kpp,omitempty"`
	BIC         *string `json:"bic,omitempty"`
	CorrAccount *string `json:"corrAccount,omitempty"`
	BankName    *string `json:"bankName,omitempty"`
}

// Payer describes the paying party of a payment.
type Payer struct {
	Account     *string `json:"account,omitempty"`
	Name        *string `json:"name,omitempty"`
	INN         *string `json:"inn,omitempty"`
	KPP         *string `json:"kpp,omitempty"`
	BIC         *string `json:"bic,omitempty"`
	CorrAccount *string `json:"corrAccount,omitempty"`
	BankName    *string `json:"bankName,omitempty"`
}

// PaymentStatusEvent is a status update for an outgoing payment made through
// the provider's API.
type PaymentStatusEvent struct {
	PaymentID   string  `json:"paymentId"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (e *PaymentStatusEvent) Kind() string { return KindPaymentStatus }
func (e *PaymentStatusEvent) ID() string   { return e.PaymentID }
