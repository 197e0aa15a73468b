package auctionhandler

import "time"

type CreateAuctionBody struct {
	Title       string    `json:"title"       form:"title"       binding:"required"        example:"Ming vase"`
	Description string    `json:"description" form:"description"`
	StartingBid float64   `json:"startingBid" form:"startingBid" binding:"omitempty,gte=0" example:"10"`
	EndDate     time.Time `json:"endDate"     form:"endDate"     example:"2025-07-27T16:05:05Z"`
	CreatorID   string    `json:"creatorId"   form:"creatorId"   binding:"required"        example:"64f1c0a2e4b0a67d9c3b5a01"`
} // @name CreateAuctionRequest

// UpdateAuctionBody is a partial update; absent fields are left unchanged.
type UpdateAuctionBody struct {
	Title       *string    `json:"title"       form:"title"`
	Description *string    `json:"description" form:"description"`
	CurrentBid  *float64   `json:"currentBid"  form:"currentBid"`
	EndDate     *time.Time `json:"endDate"     form:"endDate"`
	CreatorID   *string    `json:"creatorId"   form:"creatorId"`
} // @name UpdateAuctionRequest

// PlaceBidBody accepts the bid amount under either key; currentBid is the
// legacy alias.
type PlaceBidBody struct {
	BidAmount  *float64 `json:"bidAmount"  example:"15"`
	CurrentBid *float64 `json:"currentBid"`
} // @name PlaceBidRequest

type MessageResponse struct {
	Message string `json:"message"`
} // @name MessageResponse
