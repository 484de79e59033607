package transport

import (
	"context"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PositionsRepository interface {
		ActivePositionsBySender(ctx context.Context, sender string) ([]model.ActivePosition, error)
	}
	SignerStore interface {
		GetAllAddresses() []model.Address
	}
	Pinger interface {
		Ping(ctx context.Context) error
	}
)
