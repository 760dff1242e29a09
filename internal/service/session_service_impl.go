package service

import (
	"context"

	"github.com/alexanderramin/mindmate/internal/db"
	"github.com/alexanderramin/mindmate/internal/repository"
)

type sessionService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSessionService(uow db.UnitOfWork, observers ...UseCaseObserver) SessionService {
	return &sessionService{uow: uow, observer: combineObservers(observers)}
}

// ClearSession removes every local store key in one transaction.
func (s *sessionService) ClearSession(ctx context.Context) (err error) {
	run := startUseCase(s.observer, "clear-session")
	defer func() { run.finish(ctx, err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := repository.NewSQLiteLocalStoreRepo(tx).Clear(ctx)
		if err != nil {
			return err
		}
		run.set("keys_removed", n)
		return nil
	})
}
