package reservation

import (
	"context"
	"database/sql"

	"github.com/hoteleiro/HFD-ReservationService/pkg/dbmetrics"
)

// Database executor interfaces are shared with pkg/dbmetrics so the
// repository runs on *sql.DB, *dbmetrics.DB or an open transaction alike.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
