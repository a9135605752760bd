package repository

import (
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// IsUniqueViolation identifica erros de violação de unicidade do Postgres.
// No caminho de inserção de insights esse erro é benigno: outro writer
// concorrente inseriu o mesmo insight primeiro.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolationCode
}
