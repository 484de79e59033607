package model

// Bluefin event struct names.
const (
	PositionOpenedEvent    = "PositionOpened"
	PositionClosedEvent    = "PositionClosed"
	LiquidityProvidedEvent = "LiquidityProvided"
	LiquidityRemovedEvent  = "LiquidityRemoved"
)

// DomainEvent is a decoded Bluefin event.
type DomainEvent interface {
	EventName() string
}

type (
	PositionOpened struct {
		PoolID     ObjectID
		PositionID ObjectID
		TickLower  int32
		TickUpper  int32
	}

	PositionClosed struct {
		PoolID     ObjectID
		PositionID ObjectID
		TickLower  int32
		TickUpper  int32
	}

	// LiquidityChange is the payload shared by LiquidityProvided and LiquidityRemoved.
	LiquidityChange struct {
		PoolID           ObjectID
		PositionID       ObjectID
		CoinAAmount      uint64
		CoinBAmount      uint64
		PoolCoinAAmount  uint64
		PoolCoinBAmount  uint64
		Liquidity        Uint128
		BeforeLiquidity  Uint128
		AfterLiquidity   Uint128
		CurrentSqrtPrice Uint128
		CurrentTickIndex int32
		LowerTick        int32
		UpperTick        int32
		SequenceNumber   Uint128
	}

	LiquidityProvided struct{ LiquidityChange }
	LiquidityRemoved  struct{ LiquidityChange }
)

func (PositionOpened) EventName() string    { return PositionOpenedEvent }
func (PositionClosed) EventName() string    { return PositionClosedEvent }
func (LiquidityProvided) EventName() string { return LiquidityProvidedEvent }
func (LiquidityRemoved) EventName() string  { return LiquidityRemovedEvent }
