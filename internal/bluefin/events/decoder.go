// Package events decodes the BCS payloads of Bluefin Move events.
package events

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/autoliquid-backend/internal/bluefin/model"
)

// ErrDecode is returned when a payload of a known event does not match its layout.
var ErrDecode = errors.New("decode event")

// Decode decodes payload as the event called name. Unknown names return (nil, nil).
func Decode(name string, payload []byte) (model.DomainEvent, error) {
	var (
		ev  model.DomainEvent
		err error
	)

	switch name {
	case model.PositionOpenedEvent:
		var p positionFields
		if p, err = decodePosition(payload); err == nil {
			ev = model.PositionOpened(p)
		}
	case model.PositionClosedEvent:
		var p positionFields
		if p, err = decodePosition(payload); err == nil {
			ev = model.PositionClosed(p)
		}
	case model.LiquidityProvidedEvent:
		var c model.LiquidityChange
		if c, err = decodeLiquidityChange(payload); err == nil {
			ev = model.LiquidityProvided{LiquidityChange: c}
		}
	case model.LiquidityRemovedEvent:
		var c model.LiquidityChange
		if c, err = decodeLiquidityChange(payload); err == nil {
			ev = model.LiquidityRemoved{LiquidityChange: c}
		}
	default:
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, name, err)
	}
	return ev, nil
}

type positionFields struct {
	PoolID     model.ObjectID
	PositionID model.ObjectID
	TickLower  int32
	TickUpper  int32
}

func decodePosition(payload []byte) (positionFields, error) {
	var (
		p   positionFields
		err error
	)
	r := newReader(payload)

	if p.PoolID, err = r.objectID(); err != nil {
		return p, fmt.Errorf("pool_id: %w", err)
	}
	if p.PositionID, err = r.objectID(); err != nil {
		return p, fmt.Errorf("position_id: %w", err)
	}
	if p.TickLower, err = r.i32(); err != nil {
		return p, fmt.Errorf("tick_lower: %w", err)
	}
	if p.TickUpper, err = r.i32(); err != nil {
		return p, fmt.Errorf("tick_upper: %w", err)
	}
	return p, r.finish()
}

func decodeLiquidityChange(payload []byte) (model.LiquidityChange, error) {
	var (
		c   model.LiquidityChange
		err error
	)
	r := newReader(payload)

	if c.PoolID, err = r.objectID(); err != nil {
		return c, fmt.Errorf("pool_id: %w", err)
	}
	if c.PositionID, err = r.objectID(); err != nil {
		return c, fmt.Errorf("position_id: %w", err)
	}
	for _, f := range []struct {
		name string
		dst  *uint64
	}{
		{"coin_a_amount", &c.CoinAAmount},
		{"coin_b_amount", &c.CoinBAmount},
		{"pool_coin_a_amount", &c.PoolCoinAAmount},
		{"pool_coin_b_amount", &c.PoolCoinBAmount},
	} {
		if *f.dst, err = r.u64(); err != nil {
			return c, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	for _, f := range []struct {
		name string
		dst  *model.Uint128
	}{
		{"liquidity", &c.Liquidity},
		{"before_liquidity", &c.BeforeLiquidity},
		{"after_liquidity", &c.AfterLiquidity},
		{"current_sqrt_price", &c.CurrentSqrtPrice},
	} {
		if *f.dst, err = r.u128(); err != nil {
			return c, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	for _, f := range []struct {
		name string
		dst  *int32
	}{
		{"current_tick_index", &c.CurrentTickIndex},
		{"lower_tick", &c.LowerTick},
		{"upper_tick", &c.UpperTick},
	} {
		if *f.dst, err = r.i32(); err != nil {
			return c, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	if c.SequenceNumber, err = r.u128(); err != nil {
		return c, fmt.Errorf("sequence_number: %w", err)
	}
	return c, r.finish()
}
