package models

// ReceiptAttachment is an image picked by the user as proof of a transaction.
type ReceiptAttachment struct {
	Filename string // Original file name, used for the extension check
	Base64   string // Encoded image bytes, optionally with a data URL prefix
}

// TransactionDraft is the unvalidated content of the transaction form.
type TransactionDraft struct {
	Type        string
	Amount      string // As typed, "12,50" and "12.50" are both accepted
	Category    string
	Description string
	Receipt     *ReceiptAttachment
}

// EditRequest identifies the transaction an edit or delete applies to.
type EditRequest struct {
	TransactionID string
}
