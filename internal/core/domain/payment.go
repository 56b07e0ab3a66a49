package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentVoided  PaymentStatus = "VOIDED"
)

// ReceiptType is the fiscal receipt document issued alongside a payment.
type ReceiptType string

const (
	ReceiptBoleta  ReceiptType = "BOLETA"
	ReceiptFactura ReceiptType = "FACTURA"
	ReceiptTicket  ReceiptType = "TICKET"
	ReceiptNone    ReceiptType = ""
)

// PaymentMethod is how the payment was settled.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodCard     PaymentMethod = "CARD"
	MethodTransfer PaymentMethod = "TRANSFER"
	MethodWallet   PaymentMethod = "WALLET"
)

// Payment is the settled amount for one reservation. Code is unique and sequential
// per calendar year ("R2014-0042").
type Payment struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (UUID)
	Code          string          `json:"code"`      // Unique, sequential per year
	ReservationID string          `json:"reservationID"`
	Amount        decimal.Decimal `json:"amount"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Method        PaymentMethod   `json:"method"`
	Receipt       ReceiptType     `json:"receipt"`
	Status        PaymentStatus   `json:"status"`
	PaidAt        time.Time       `json:"paidAt"`
	AuditFields
}

// LineItemKind classifies a payment line item.
type LineItemKind string

const (
	LineRoom        LineItemKind = "ROOM"
	LineService     LineItemKind = "SERVICE"
	LineProduct     LineItemKind = "PRODUCT"
	LineDocumentFee LineItemKind = "DOCUMENT_FEE"
)

// PaymentLineItem is one itemized charge within a payment. The invariant across a
// payment is sum(Subtotal) == Payment.Amount; allocation remainders are absorbed
// into the last item.
type PaymentLineItem struct {
	LineItemID  string          `json:"lineItemID"` // Primary Key (UUID)
	PaymentID   string          `json:"paymentID"`
	Kind        LineItemKind    `json:"kind"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	RefID       string          `json:"refID,omitempty"` // service or product reference
	OccurredAt  time.Time       `json:"occurredAt"`
}
