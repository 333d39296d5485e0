package apperror

import "errors"

var (
	ErrUnknownPlayer      = errors.New("player is not in the room")
	ErrPlayerDisconnected = errors.New("player is disconnected")
	ErrRoomNotPlaying     = errors.New("room is not in a playing state")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrInvalidCell        = errors.New("invalid cell index")
	ErrCellOccupied       = errors.New("cell is already occupied")
)
