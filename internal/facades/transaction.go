package facades

//go:generate mockgen -source=transaction.go -destination=transaction_mock.go -package=facades

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-finance-tracker/internal/logger"
	"github.com/sbilibin2017/gw-finance-tracker/internal/models"
)

// Store and blob failures surfaced to callers. The cause is wrapped.
var (
	ErrStoreReadFailed       = errors.New("transaction store read failed")
	ErrStoreWriteFailed      = errors.New("transaction store write failed")
	ErrBlobUploadFailed      = errors.New("receipt upload failed")
	ErrInvalidReceiptPayload = errors.New("receipt is not valid base64")
)

// TransactionStore is the document store holding each user's transactions.
type TransactionStore interface {
	List(ctx context.Context, userID string) ([]models.Transaction, error)
	Get(ctx context.Context, userID, id string) (*models.Transaction, error)
	Put(ctx context.Context, userID, id string, doc map[string]any) error
	Delete(ctx context.Context, userID, id string) error
}

// BlobStore keeps receipt images and returns a retrievable URL.
type BlobStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// TransactionFacade orchestrates the transaction and blob stores.
type TransactionFacade struct {
	store TransactionStore
	blobs BlobStore
	now   func() time.Time
	newID func() string
}

// NewTransactionFacade creates a facade. blobs may be nil, in which case receipts
// are kept inline on the record.
func NewTransactionFacade(store TransactionStore, blobs BlobStore) *TransactionFacade {
	return &TransactionFacade{
		store: store,
		blobs: blobs,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// List returns all transactions of the user in store order.
func (f *TransactionFacade) List(ctx context.Context, userID string) ([]models.Transaction, error) {
	txs, err := f.store.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreReadFailed, err)
	}
	return txs, nil
}

// Get returns one transaction or nil when it does not exist.
func (f *TransactionFacade) Get(ctx context.Context, userID, id string) (*models.Transaction, error) {
	tx, err := f.store.Get(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to get transaction", "userID", userID, "id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreReadFailed, err)
	}
	return tx, nil
}

// Create stores tx for userID, uploading receipt first when one is attached.
// An existing record with the same id is overwritten.
func (f *TransactionFacade) Create(ctx context.Context, userID string, tx models.Transaction, receipt *models.ReceiptAttachment) (*models.Transaction, error) {
	return f.put(ctx, userID, tx, receipt)
}

// Update overwrites transaction id with tx.
func (f *TransactionFacade) Update(ctx context.Context, userID, id string, tx models.Transaction, receipt *models.ReceiptAttachment) (*models.Transaction, error) {
	tx.ID = id
	return f.put(ctx, userID, tx, receipt)
}

// Remove deletes transaction id. Removing a missing id succeeds.
func (f *TransactionFacade) Remove(ctx context.Context, userID, id string) error {
	if err := f.store.Delete(ctx, userID, id); err != nil {
		logger.Log.Errorw("failed to delete transaction", "userID", userID, "id", id, "error", err)
		return fmt.Errorf("%w: %v", ErrStoreWriteFailed, err)
	}
	return nil
}

func (f *TransactionFacade) put(ctx context.Context, userID string, tx models.Transaction, receipt *models.ReceiptAttachment) (*models.Transaction, error) {
	tx.UserID = userID

	uploaded := false
	if receipt != nil {
		var err error
		if uploaded, err = f.attachReceipt(ctx, userID, &tx, *receipt); err != nil {
			return nil, err
		}
	}

	if err := f.store.Put(ctx, userID, tx.ID, Document(tx)); err != nil {
		if uploaded {
			// Not atomic with the upload: the blob stays orphaned.
			logger.Log.Warnw("receipt orphaned after failed write", "userID", userID, "id", tx.ID, "url", models.StringValue(tx.ReceiptURL))
		}
		logger.Log.Errorw("failed to put transaction", "userID", userID, "id", tx.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreWriteFailed, err)
	}

	return &tx, nil
}

func (f *TransactionFacade) attachReceipt(ctx context.Context, userID string, tx *models.Transaction, receipt models.ReceiptAttachment) (bool, error) {
	payload := stripDataURL(receipt.Base64)

	if f.blobs == nil {
		tx.ReceiptBase64 = &payload
		tx.ReceiptURL = nil
		return false, nil
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidReceiptPayload, err)
	}

	ext := strings.TrimPrefix(strings.ToLower(path.Ext(receipt.Filename)), ".")
	objectPath := ReceiptObjectPath(userID, f.now(), f.newID(), ext)

	url, err := f.blobs.Upload(ctx, objectPath, data, receiptContentType(ext, data))
	if err != nil {
		logger.Log.Errorw("failed to upload receipt", "userID", userID, "path", objectPath, "error", err)
		return false, fmt.Errorf("%w: %v", ErrBlobUploadFailed, err)
	}

	tx.ReceiptURL = &url
	tx.ReceiptBase64 = nil
	return true, nil
}

// ReceiptObjectPath is the blob key of a receipt: receipts/{userID}/{unixMillis}-{name}.{ext}.
func ReceiptObjectPath(userID string, at time.Time, name, ext string) string {
	if ext == "" {
		return fmt.Sprintf("receipts/%s/%d-%s", userID, at.UnixMilli(), name)
	}
	return fmt.Sprintf("receipts/%s/%d-%s.%s", userID, at.UnixMilli(), name, ext)
}

// Document flattens tx into the column map written by the store. Absent optional
// fields are left out entirely.
func Document(tx models.Transaction) map[string]any {
	doc := map[string]any{
		"id":         tx.ID,
		"user_id":    tx.UserID,
		"type":       string(tx.Type),
		"amount":     tx.Amount.String(),
		"created_at": tx.CreatedAt,
	}

	optional := map[string]*string{
		"updated_at":     tx.UpdatedAt,
		"category":       tx.Category,
		"description":    tx.Description,
		"receipt_url":    tx.ReceiptURL,
		"receipt_base64": tx.ReceiptBase64,
	}
	for key, val := range optional {
		if val != nil {
			doc[key] = *val
		}
	}
	return doc
}

func stripDataURL(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			return s[i+1:]
		}
	}
	return s
}

func receiptContentType(ext string, data []byte) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	}
	return http.DetectContentType(data)
}
