package middlewares

const (
	CtxRequestID = "request_id"

	ctxSubjectKey = "auth.subject"
	ctxRoleKey    = "auth.role"
)
