package model

// ActivePosition is the latest open state of a position owned by a sender.
type ActivePosition struct {
	PositionID string `json:"position_id"`
	PoolID     string `json:"pool_id"`
	Sender     string `json:"sender"`
	TickLower  int32  `json:"tick_lower"`
	TickUpper  int32  `json:"tick_upper"`
	Checkpoint uint64 `json:"checkpoint"`
	Digest     string `json:"digest"`
}
