package settings

import "github.com/m04kA/PetCare-BookingService/pkg/txmanager"

// DBExecutor общий интерфейс *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
