package contract

import "github.com/avelarde/planlevel/internal/app"

type ImportResult = app.ImportResult
