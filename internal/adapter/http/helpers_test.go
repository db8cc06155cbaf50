package http

import (
	"context"

	"trustlend-backend/internal/domain/uow"
	"trustlend-backend/internal/testutil/uowmock"
)

type contextArg = context.Context

func passThroughUoW(r uow.Repos) uow.UnitOfWork { return uowmock.New(r) }
