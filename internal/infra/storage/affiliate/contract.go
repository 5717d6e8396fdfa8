package affiliate

import (
	"github.com/Admin-dev32/Manna-Affiliate/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
