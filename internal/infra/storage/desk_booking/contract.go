package desk_booking

import "github.com/m04kA/SMC-DeskBooker/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
