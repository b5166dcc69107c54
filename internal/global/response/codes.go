package response

// 通用错误
var (
	ErrInvalidRequest = newError(400, "Invalid request")
	ErrUnauthorized   = newError(401, "Authentication required")
	ErrTokenInvalid   = newError(401, "Invalid or expired token")
	ErrForbidden      = newError(403, "Permission denied")
	ErrNotFound       = newError(404, "Resource not found")
	ErrDatabase       = newError(500, "Database error")
	ErrInternal       = newError(500, "Internal server error")
)

// 活动与报名
var (
	ErrActivityNotFound     = newError(404, "Activity not found")
	ErrActivityExists       = newError(400, "Activity already exists")
	ErrActivityFull         = newError(400, "Activity is full")
	ErrAlreadySignedUp      = newError(400, "Student is already signed up")
	ErrNotSignedUp          = newError(400, "Student is not signed up for this activity")
	ErrInvalidCapacity      = newError(400, "Max participants must be at least 1")
	ErrCapacityBelowCurrent = newError(400, "Cannot reduce capacity below current participants")
)

// 用户与认证
var (
	ErrEmailRegistered    = newError(400, "Email already registered")
	ErrInvalidCredentials = newError(401, "Invalid email or password")
	ErrWeakPassword       = newError(400, "Password too weak")
)

// 审批流程
var (
	ErrRequestNotFound   = newError(404, "Membership request not found")
	ErrRequestNotPending = newError(400, "Membership request already resolved")
	ErrRequestPending    = newError(400, "Signup request already pending")
)

// 活动事件
var (
	ErrEventNotFound    = newError(404, "Event not found")
	ErrEventFull        = newError(400, "Event is full")
	ErrAlreadyAttending = newError(400, "Student is already attending this event")
)
