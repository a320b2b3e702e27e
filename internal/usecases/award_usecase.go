package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	domainerrors "github.com/darksuei/pitci-server/internal/domain/errors"
	"github.com/darksuei/pitci-server/internal/domain/repositories"
)

// AwardUsecase drives award categories through their nomination and voting
// windows
type AwardUsecase struct {
	awardRepo    repositories.AwardRepository
	nomineeRepo  repositories.AwardNomineeRepository
	voteRepo     repositories.VoteRepository
	userRepo     repositories.UserRepository
	businessRepo repositories.BusinessRepository
	pitchRepo    repositories.PitchRepository
	alerts       *AlertService
	uow          repositories.UnitOfWork
}

// NewAwardUsecase creates a new award usecase
func NewAwardUsecase(
	awardRepo repositories.AwardRepository,
	nomineeRepo repositories.AwardNomineeRepository,
	voteRepo repositories.VoteRepository,
	userRepo repositories.UserRepository,
	businessRepo repositories.BusinessRepository,
	pitchRepo repositories.PitchRepository,
	alerts *AlertService,
	uow repositories.UnitOfWork,
) *AwardUsecase {
	return &AwardUsecase{
		awardRepo:    awardRepo,
		nomineeRepo:  nomineeRepo,
		voteRepo:     voteRepo,
		userRepo:     userRepo,
		businessRepo: businessRepo,
		pitchRepo:    pitchRepo,
		alerts:       alerts,
		uow:          uow,
	}
}

// CreateAward creates a new award category in the not-started state
func (u *AwardUsecase) CreateAward(ctx context.Context, input *entities.CreateAwardInput) (*entities.Award, error) {
	award := &entities.Award{
		Title:       input.Title,
		Description: input.Description,
		Status:      entities.AwardNotStarted,
	}
	if err := u.awardRepo.Create(ctx, award); err != nil {
		return nil, err
	}
	return award, nil
}

// DeleteAward removes an award category. Nominees and votes under it go with
// it through the store's cascade.
func (u *AwardUsecase) DeleteAward(ctx context.Context, awardID uuid.UUID) error {
	if _, err := u.awardRepo.GetByID(ctx, awardID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Award not found")
		}
		return err
	}
	return u.awardRepo.Delete(ctx, awardID)
}

// SetAwardStatus moves an award to the given window. Any transition between
// valid statuses is allowed; admins may reopen a closed award.
func (u *AwardUsecase) SetAwardStatus(ctx context.Context, input *entities.AwardStatusInput) (*entities.Award, error) {
	if !entities.ValidAwardStatus(input.Status) {
		return nil, domainerrors.Unprocessable("Invalid award status")
	}

	award, err := u.awardRepo.GetByID(ctx, input.AwardID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Award not found")
		}
		return nil, err
	}

	if err := u.awardRepo.UpdateStatus(ctx, award.ID, input.Status); err != nil {
		return nil, err
	}
	award.Status = input.Status
	return award, nil
}

// GetAward returns an award category by id
func (u *AwardUsecase) GetAward(ctx context.Context, awardID uuid.UUID) (*entities.Award, error) {
	award, err := u.awardRepo.GetByID(ctx, awardID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Award not found")
		}
		return nil, err
	}
	return award, nil
}

// Nominate enters a nominee under an award category. Nominations are only
// accepted while the award's nomination window is open.
func (u *AwardUsecase) Nominate(ctx context.Context, nominatorID uuid.UUID, input *entities.NominateInput) (*entities.AwardNominee, error) {
	nomineeType := input.NomineeType
	if nomineeType == "" {
		nomineeType = entities.NomineeBusiness
	}

	ref := entities.NomineeRef{Type: nomineeType, ID: input.NomineeID}
	if !ref.Valid() {
		return nil, domainerrors.Unprocessable("Invalid nominee reference")
	}

	award, err := u.awardRepo.GetByIDAndStatus(ctx, input.AwardID, entities.AwardNominationsOpen)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.WindowClosed("Award not found or nominations not open yet.")
		}
		return nil, err
	}

	existing, err := u.nomineeRepo.GetByNomineeRef(ctx, award.ID, ref.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("This nominee already exists under this award category.")
	}

	if err := u.nomineeExists(ctx, ref); err != nil {
		return nil, err
	}

	nominee := &entities.AwardNominee{
		AwardID:     award.ID,
		Nominee:     ref,
		NominatorID: nominatorID,
		Reason:      null.NewString(input.Reason, input.Reason != ""),
	}
	if err := u.nomineeRepo.Create(ctx, nominee); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("This nominee already exists under this award category.")
		}
		return nil, err
	}

	if ref.Type == entities.NomineeUser {
		u.alerts.AwardNomination(ctx, ref.ID, award.Title)
	}

	return nominee, nil
}

// nomineeExists resolves the referenced entity against the table its type
// selects
func (u *AwardUsecase) nomineeExists(ctx context.Context, ref entities.NomineeRef) error {
	var err error
	switch ref.Type {
	case entities.NomineeUser:
		_, err = u.userRepo.GetByID(ctx, ref.ID)
	case entities.NomineeBusiness:
		_, err = u.businessRepo.GetByID(ctx, ref.ID)
	case entities.NomineePitch:
		_, err = u.pitchRepo.GetByID(ctx, ref.ID)
	}
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Nominee not found.")
		}
		return err
	}
	return nil
}

// Vote casts the caller's single vote in an award category. The vote row and
// the nominee tally commit together.
func (u *AwardUsecase) Vote(ctx context.Context, userID uuid.UUID, input *entities.VoteInput) (*entities.AwardNominee, error) {
	award, err := u.awardRepo.GetByIDAndStatus(ctx, input.AwardID, entities.AwardVotingOpen)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.WindowClosed("Award not found or voting not open yet.")
		}
		return nil, err
	}

	nominee, err := u.nomineeRepo.GetUnderAward(ctx, award.ID, input.NomineeID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Nominee not found under this award category.")
		}
		return nil, err
	}

	voted, err := u.voteRepo.HasUserVotedInAward(ctx, userID, award.ID)
	if err != nil {
		return nil, err
	}
	if voted {
		return nil, domainerrors.AlreadyVoted("You have already voted for this award category.")
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		vote := &entities.Vote{
			UserID:    userID,
			NomineeID: nominee.ID,
			AwardID:   award.ID,
		}
		if err := u.voteRepo.Create(ctx, vote); err != nil {
			// The unique index catches votes racing past the check above.
			if errors.Is(err, domainerrors.ErrAlreadyVoted) {
				return domainerrors.AlreadyVoted("You have already voted for this award category.")
			}
			return err
		}
		if err := u.nomineeRepo.IncrementVotes(ctx, nominee.ID); err != nil {
			return err
		}
		// Report the tally from the vote rows rather than the stale snapshot
		// read before the transaction.
		count, err := u.voteRepo.CountByNominee(ctx, nominee.ID)
		if err != nil {
			return err
		}
		nominee.VotesCount = int(count)
		return nil
	})
	if err != nil {
		return nil, err
	}

	awardVotesTotal.Inc()
	return nominee, nil
}
