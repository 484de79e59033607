package writer

import (
	"context"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Repository persists both record kinds atomically.
type Repository interface {
	InsertRecords(ctx context.Context, positions []model.PositionUpdate, errs []model.TransactionError) error
}
