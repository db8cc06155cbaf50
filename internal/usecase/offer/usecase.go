package offer

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"trustlend-backend/internal/domain/account"
	domain "trustlend-backend/internal/domain/offer"
	"trustlend-backend/internal/domain/uow"
	"trustlend-backend/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type CreateInput struct {
	LenderID     string
	Amount       int
	InterestRate float64
	TenorDays    int
}

// Create posts a new offer for a lender.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Offer, error) {
	var out *domain.Offer
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		lender, err := r.Accounts.GetByAccountID(ctx, in.LenderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return account.ErrNotFound
			}
			return err
		}
		if lender.Role != account.RoleLender {
			return account.ErrWrongRole
		}

		o := &domain.Offer{
			OfferID:      id.NewID32(),
			LenderID:     in.LenderID,
			Amount:       in.Amount,
			InterestRate: in.InterestRate,
			TenorDays:    in.TenorDays,
			Active:       true,
		}
		if err := r.Offers.Create(ctx, o); err != nil {
			return err
		}
		out = o
		return nil
	})
	return out, err
}

type UpdateInput struct {
	Amount       *int
	InterestRate *float64
	TenorDays    *int
	Active       *bool
}

// Update edits an offer. Offers referenced by an open loan request are
// locked against changes.
func (u *Usecase) Update(ctx context.Context, lenderID, offerID string, in UpdateInput) (*domain.Offer, error) {
	var out *domain.Offer
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := u.getOwnedForUpdate(ctx, r, lenderID, offerID)
		if err != nil {
			return err
		}
		inUse, err := r.LoanRequests.ExistsOpenReferencingOffer(ctx, offerID)
		if err != nil {
			return err
		}
		if inUse {
			return domain.ErrInUse
		}

		if in.Amount != nil {
			o.Amount = *in.Amount
		}
		if in.InterestRate != nil {
			o.InterestRate = *in.InterestRate
		}
		if in.TenorDays != nil {
			o.TenorDays = *in.TenorDays
		}
		if in.Active != nil {
			o.Active = *in.Active
		}
		if err := r.Offers.Save(ctx, o); err != nil {
			return err
		}
		out = o
		return nil
	})
	return out, err
}

// Delete soft-deletes an unreferenced offer.
func (u *Usecase) Delete(ctx context.Context, lenderID, offerID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		o, err := u.getOwnedForUpdate(ctx, r, lenderID, offerID)
		if err != nil {
			return err
		}
		inUse, err := r.LoanRequests.ExistsOpenReferencingOffer(ctx, offerID)
		if err != nil {
			return err
		}
		if inUse {
			return domain.ErrInUse
		}
		return r.Offers.Delete(ctx, o)
	})
}

// ListMine returns the lender's active offers.
func (u *Usecase) ListMine(ctx context.Context, lenderID string) ([]domain.Offer, error) {
	var out []domain.Offer
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		offers, err := r.Offers.ListActiveByLender(ctx, lenderID)
		if err != nil {
			return err
		}
		out = offers
		return nil
	})
	return out, err
}

func (u *Usecase) getOwnedForUpdate(ctx context.Context, r uow.Repos, lenderID, offerID string) (*domain.Offer, error) {
	o, err := r.Offers.GetByOfferIDForUpdate(ctx, offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if o.LenderID != lenderID {
		return nil, domain.ErrNotOwner
	}
	return o, nil
}
