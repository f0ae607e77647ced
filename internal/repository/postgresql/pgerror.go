package postgresql

// PostgreSQL error codes checked when translating driver errors into
// domain sentinel errors.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)
