package auction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"auctionhub/internal/models"
	"auctionhub/internal/redis/auctioncache"
	"auctionhub/internal/store/auctionstore"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUnauthorized    = errors.New("caller is not the creator or an admin")
	ErrOwnAuctionBid   = errors.New("the auction creator cannot bid on their own auction")
	ErrValidation      = errors.New("invalid request")
)

type CreateAuctionRequest struct {
	Title       string
	Description string
	StartingBid float64
	EndDate     time.Time
	CreatorID   string
	ImageURL    string
}

// UpdateAuctionRequest carries a partial update. Nil fields are left
// untouched by the single underlying write.
type UpdateAuctionRequest struct {
	Title       *string
	Description *string
	CurrentBid  *float64
	EndDate     *time.Time
	CreatorID   *string
	ImageURL    *string
}

// AuctionStore is the persistence adapter for the auctions collection.
type AuctionStore interface {
	Insert(ctx context.Context, a models.Auction) (models.Auction, error)
	FindAll(ctx context.Context) ([]models.Auction, error)
	FindByID(ctx context.Context, id string) (models.Auction, error)
	Update(ctx context.Context, id string, patch models.AuctionPatch) (models.Auction, error)
	Delete(ctx context.Context, id string) error
}

// UserStore resolves auction creators for list enrichment.
type UserStore interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[string]models.User, error)
}

type IAuctionService interface {
	Create(ctx context.Context, req CreateAuctionRequest) (models.Auction, error)
	List(ctx context.Context) ([]models.Auction, error)
	GetByID(ctx context.Context, id string) (models.Auction, error)
	Update(ctx context.Context, id string, req UpdateAuctionRequest, callerID, callerRole string) (models.Auction, error)
	Bid(ctx context.Context, id string, amount float64, callerID string) (models.Auction, error)
	Delete(ctx context.Context, id string, callerID, callerRole string) error
}

type auctionService struct {
	auctions AuctionStore
	users    UserStore
	cache    *auctioncache.Cache
}

func NewAuctionService(auctions AuctionStore, users UserStore, cache *auctioncache.Cache) IAuctionService {
	return &auctionService{
		auctions: auctions,
		users:    users,
		cache:    cache,
	}
}

// Create seeds currentBid from startingBid; any client-supplied currentBid
// is ignored.
func (svc *auctionService) Create(ctx context.Context, req CreateAuctionRequest) (models.Auction, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Auction{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	creator, err := primitive.ObjectIDFromHex(req.CreatorID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("%w: creatorId must be a valid id", ErrValidation)
	}

	a := models.Auction{
		Title:       req.Title,
		Description: req.Description,
		StartingBid: req.StartingBid,
		CurrentBid:  req.StartingBid,
		EndDate:     req.EndDate,
		Creator:     creator,
		ImageURL:    req.ImageURL,
	}
	created, err := svc.auctions.Insert(ctx, a)
	if err != nil {
		return models.Auction{}, fmt.Errorf("create auction: %w", err)
	}
	return created, nil
}

// List returns every auction, each enriched with its resolved creator.
// A dangling creator reference leaves the field nil rather than failing.
func (svc *auctionService) List(ctx context.Context) ([]models.Auction, error) {
	auctions, err := svc.auctions.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(auctions))
	seen := map[string]bool{}
	for _, a := range auctions {
		if a.Creator.IsZero() || seen[a.Creator.Hex()] {
			continue
		}
		seen[a.Creator.Hex()] = true
		ids = append(ids, a.Creator)
	}

	creators, err := svc.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve creators: %w", err)
	}
	for i := range auctions {
		if u, ok := creators[auctions[i].Creator.Hex()]; ok {
			auctions[i].CreatorUser = &u
		}
	}
	return auctions, nil
}

func (svc *auctionService) GetByID(ctx context.Context, id string) (models.Auction, error) {
	if a, err := svc.cache.Get(ctx, id); err == nil {
		return a, nil
	}

	a, err := svc.auctions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, auctionstore.ErrNotFound) {
			return models.Auction{}, ErrAuctionNotFound
		}
		return models.Auction{}, fmt.Errorf("get auction %s: %w", id, err)
	}
	svc.cache.Set(ctx, a)
	return a, nil
}

// Update replaces the supplied subset of fields in one write. Only the
// creator or an admin may update. currentBid is accepted as-is; there is no
// monotonicity check against the prior value.
func (svc *auctionService) Update(ctx context.Context, id string, req UpdateAuctionRequest, callerID, callerRole string) (models.Auction, error) {
	existing, err := svc.auctions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, auctionstore.ErrNotFound) {
			return models.Auction{}, ErrAuctionNotFound
		}
		return models.Auction{}, fmt.Errorf("get auction %s: %w", id, err)
	}
	if !canModify(existing, callerID, callerRole) {
		return models.Auction{}, ErrUnauthorized
	}

	patch := models.AuctionPatch{
		Title:       req.Title,
		Description: req.Description,
		CurrentBid:  req.CurrentBid,
		EndDate:     req.EndDate,
		ImageURL:    req.ImageURL,
	}
	if req.CreatorID != nil {
		creator, err := primitive.ObjectIDFromHex(*req.CreatorID)
		if err != nil {
			return models.Auction{}, fmt.Errorf("%w: creatorId must be a valid id", ErrValidation)
		}
		patch.Creator = &creator
	}

	updated, err := svc.auctions.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, auctionstore.ErrNotFound) {
			return models.Auction{}, ErrAuctionNotFound
		}
		return models.Auction{}, fmt.Errorf("update auction %s: %w", id, err)
	}
	svc.cache.Invalidate(ctx, id)
	return updated, nil
}

// Bid overwrites currentBid with the given amount. The creator may not bid
// on their own auction; any other caller's amount is accepted as-is, lower
// bids included. Two concurrent bids race: last write wins.
func (svc *auctionService) Bid(ctx context.Context, id string, amount float64, callerID string) (models.Auction, error) {
	existing, err := svc.auctions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, auctionstore.ErrNotFound) {
			return models.Auction{}, ErrAuctionNotFound
		}
		return models.Auction{}, fmt.Errorf("get auction %s: %w", id, err)
	}
	if !existing.Creator.IsZero() && existing.Creator.Hex() == callerID {
		return models.Auction{}, ErrOwnAuctionBid
	}

	updated, err := svc.auctions.Update(ctx, id, models.AuctionPatch{CurrentBid: &amount})
	if err != nil {
		if errors.Is(err, auctionstore.ErrNotFound) {
			return models.Auction{}, ErrAuctionNotFound
		}
		return models.Auction{}, fmt.Errorf("bid on auction %s: %w", id, err)
	}
	svc.cache.Invalidate(ctx, id)
	return updated, nil
}

// Delete permanently removes the auction. Same authorization rule as Update.
func (svc *auctionService) Delete(ctx context.Context, id string, callerID, callerRole string) error {
	existing, err := svc.auctions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, auctionstore.ErrNotFound) {
			return ErrAuctionNotFound
		}
		return fmt.Errorf("get auction %s: %w", id, err)
	}
	if !canModify(existing, callerID, callerRole) {
		return ErrUnauthorized
	}

	if err := svc.auctions.Delete(ctx, id); err != nil {
		if errors.Is(err, auctionstore.ErrNotFound) {
			return ErrAuctionNotFound
		}
		return fmt.Errorf("delete auction %s: %w", id, err)
	}
	svc.cache.Invalidate(ctx, id)
	return nil
}

func canModify(a models.Auction, callerID, callerRole string) bool {
	return a.Creator.Hex() == callerID || callerRole == models.RoleAdmin
}
