package repository

// Tx is an infra-defined transaction handle (pgx.Tx for Postgres).
// Repositories MUST accept nil (non-transactional path).
type Tx interface{}

var NoTX Tx
