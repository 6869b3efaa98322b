package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// transferService keeps the two legs of a transfer consistent. Every write
// touches both legs inside one transaction.
type transferService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	accountRepo portsrepo.AccountReader
	entryRepo   portsrepo.EntryRepositoryFacade
}

// NewTransferService creates a new transfer service.
func NewTransferService(txManager portsrepo.TransactionManager, accountRepo portsrepo.AccountReader,
	entryRepo portsrepo.EntryRepositoryFacade, options ...ServiceOption) portssvc.TransferSvcFacade {
	svc := &transferService{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// endSpan records err on span before ending it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *transferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (from, to *domain.LedgerEntry, err error) {
	ctx, span := tracer.Start(ctx, "TransferService.CreateTransfer")
	defer func() { endSpan(span, err) }()
	defer func() { s.Record("transfer_create", err) }()

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, nil, err
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		fromAcc, err := s.accountRepo.FindAccountByID(ctx, req.FromAccountID)
		if err != nil {
			return err
		}
		toAcc, err := s.accountRepo.FindAccountByID(ctx, req.ToAccountID)
		if err != nil {
			return err
		}
		amount, err := domain.ParseMoney(req.Amount, fromAcc.Currency)
		if err != nil {
			return err
		}
		if err := engine.ValidateTransferAccounts(*fromAcc, *toAcc, amount); err != nil {
			return err
		}

		fromSeq, err := s.entryRepo.NextSequence(ctx, fromAcc.ID, date)
		if err != nil {
			return err
		}
		toSeq, err := s.entryRepo.NextSequence(ctx, toAcc.ID, date)
		if err != nil {
			return err
		}
		from, to, err = engine.BuildTransferLegs(engine.TransferSpec{
			TransferID:   uuid.New(),
			From:         *fromAcc,
			To:           *toAcc,
			Amount:       amount,
			Date:         date,
			Category:     req.Category,
			Subcategory:  domain.TrimOrNil(req.Subcategory),
			Label:        domain.TrimOrNil(req.Label),
			FromSequence: fromSeq,
			ToSequence:   toSeq,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		return s.entryRepo.SaveEntries(ctx, *from, *to)
	})
	if err != nil {
		return nil, nil, err
	}

	span.SetAttributes(attribute.String("transfer.id", from.TransferID.String()))
	s.LogInfo(ctx, "Transfer created",
		slog.String("transfer_id", from.TransferID.String()),
		slog.String("from_account_id", from.AccountID),
		slog.String("to_account_id", to.AccountID),
		slog.String("amount", to.Amount.StringFixed()))
	return from, to, nil
}

// loadLegs returns the validated (from, to) pair of a transfer.
func (s *transferService) loadLegs(ctx context.Context, transferID uuid.UUID) (domain.LedgerEntry, domain.LedgerEntry, error) {
	legs, err := s.entryRepo.FindEntriesByTransferID(ctx, transferID)
	if err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}
	return engine.PairTransferLegs(transferID, legs)
}

func (s *transferService) GetTransfer(ctx context.Context, transferID string) (*domain.LedgerEntry, *domain.LedgerEntry, error) {
	id, err := parseID("transfer", transferID)
	if err != nil {
		return nil, nil, err
	}
	from, to, err := s.loadLegs(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return &from, &to, nil
}

func (s *transferService) UpdateTransfer(ctx context.Context, transferID string, req dto.UpdateTransferRequest) (from, to *domain.LedgerEntry, err error) {
	ctx, span := tracer.Start(ctx, "TransferService.UpdateTransfer", trace.WithAttributes(attribute.String("transfer.id", transferID)))
	defer func() { endSpan(span, err) }()
	defer func() { s.Record("transfer_update", err) }()

	id, err := parseID("transfer", transferID)
	if err != nil {
		return nil, nil, err
	}
	var u engine.TransferUpdate
	if u.Date, err = parseDatePtr(req.Date); err != nil {
		return nil, nil, err
	}
	u.Category = req.Category
	u.Subcategory = req.Subcategory
	u.Label = req.Label

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		curFrom, curTo, err := s.loadLegs(ctx, id)
		if err != nil {
			return err
		}
		if req.Amount != nil {
			amount, err := domain.ParseMoney(*req.Amount, curFrom.Amount.Currency())
			if err != nil {
				return err
			}
			u.Amount = &amount
		}

		fromSeq, toSeq := curFrom.Sequence, curTo.Sequence
		if u.MovesLeg(curFrom) {
			if fromSeq, err = s.entryRepo.NextSequence(ctx, curFrom.AccountID, *u.Date); err != nil {
				return err
			}
		}
		if u.MovesLeg(curTo) {
			if toSeq, err = s.entryRepo.NextSequence(ctx, curTo.AccountID, *u.Date); err != nil {
				return err
			}
		}
		if from, to, err = engine.ApplyTransferUpdate(curFrom, curTo, u, fromSeq, toSeq); err != nil {
			return err
		}
		if err := s.entryRepo.UpdateEntries(ctx, *from, *to); err != nil {
			return err
		}
		for _, leg := range []domain.LedgerEntry{curFrom, curTo} {
			if u.MovesLeg(leg) {
				if err := s.entryRepo.CloseSequenceGap(ctx, leg.AccountID, leg.Date, leg.Sequence); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	s.LogInfo(ctx, "Transfer updated", slog.String("transfer_id", transferID))
	return from, to, nil
}

func (s *transferService) DeleteTransfer(ctx context.Context, transferID string) (fromID, toID uuid.UUID, err error) {
	ctx, span := tracer.Start(ctx, "TransferService.DeleteTransfer", trace.WithAttributes(attribute.String("transfer.id", transferID)))
	defer func() { endSpan(span, err) }()
	defer func() { s.Record("transfer_delete", err) }()

	id, err := parseID("transfer", transferID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		from, to, err := s.loadLegs(ctx, id)
		if err != nil {
			return err
		}
		if fromID, toID, err = s.entryRepo.DeleteTransfer(ctx, id); err != nil {
			return err
		}
		if err := s.entryRepo.CloseSequenceGap(ctx, from.AccountID, from.Date, from.Sequence); err != nil {
			return err
		}
		return s.entryRepo.CloseSequenceGap(ctx, to.AccountID, to.Date, to.Sequence)
	})
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	s.LogInfo(ctx, "Transfer deleted", slog.String("transfer_id", transferID))
	return fromID, toID, nil
}
