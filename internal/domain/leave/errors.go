package leave

import "errors"

var (
	ErrLeaveRequestNotFound       = errors.New("leave request not found")
	ErrLeaveRequestAlreadyDecided = errors.New("leave request already decided")
)
