package auctionhandler

import (
	"errors"
	"net/http"

	"auctionhub/internal/services/auction"
	"auctionhub/internal/upload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

type Handler struct {
	svc     auction.IAuctionService
	uploads *upload.Saver
}

func New(svc auction.IAuctionService, uploads *upload.Saver) *Handler {
	return &Handler{svc: svc, uploads: uploads}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/api/auctions", h.create)
	r.GET("/api/auctions", h.list)
	r.GET("/api/auctions/:id", h.info)
	r.PUT("/api/auctions/bid/:id", h.bid)
	r.PUT("/api/auctions/:id", h.update)
	r.DELETE("/api/auctions/:id", h.remove)
}

// @Summary		Create an auction
// @Description	Creates an auction; currentBid is seeded from startingBid. Accepts JSON or a multipart form with an optional "image" file.
// @Tags			Auctions
// @Accept			json,mpfd
// @Param			body	body		CreateAuctionBody	true	"Auction payload"
// @Success		201		{object}	models.Auction
// @Failure		400		{object}	MessageResponse
// @Failure		500		{object}	MessageResponse
// @Router			/api/auctions [post]
func (h *Handler) create(c *gin.Context) {
	var body CreateAuctionBody
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	imageURL, ok := h.saveImage(c)
	if !ok {
		return
	}

	created, err := h.svc.Create(c.Request.Context(), auction.CreateAuctionRequest{
		Title:       body.Title,
		Description: body.Description,
		StartingBid: body.StartingBid,
		EndDate:     body.EndDate,
		CreatorID:   body.CreatorID,
		ImageURL:    imageURL,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary		List auctions
// @Description	Returns every auction with the creator populated where it still resolves.
// @Tags			Auctions
// @Success		200	{array}		models.Auction
// @Failure		500	{object}	MessageResponse
// @Router			/api/auctions [get]
func (h *Handler) list(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary		Get auction details
// @Tags			Auctions
// @Param			id	path		string	true	"Auction ID"
// @Success		200	{object}	models.Auction
// @Failure		404	{object}	MessageResponse
// @Router			/api/auctions/{id} [get]
func (h *Handler) info(c *gin.Context) {
	out, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary		Update an auction
// @Description	Partial update by the creator or an admin. Caller identity comes from the X-User-Id / X-User-Role headers.
// @Tags			Auctions
// @Accept			json,mpfd
// @Param			id		path		string				true	"Auction ID"
// @Param			body	body		UpdateAuctionBody	true	"Fields to change"
// @Success		200		{object}	models.Auction
// @Failure		401		{object}	MessageResponse
// @Failure		404		{object}	MessageResponse
// @Router			/api/auctions/{id} [put]
func (h *Handler) update(c *gin.Context) {
	var body UpdateAuctionBody
	if err := c.ShouldBind(&body); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	req := auction.UpdateAuctionRequest{
		Title:       body.Title,
		Description: body.Description,
		CurrentBid:  body.CurrentBid,
		EndDate:     body.EndDate,
		CreatorID:   body.CreatorID,
	}
	if imageURL, ok := h.saveImage(c); !ok {
		return
	} else if imageURL != "" {
		req.ImageURL = &imageURL
	}

	out, err := h.svc.Update(c.Request.Context(), c.Param("id"), req,
		c.GetHeader(headerUserID), c.GetHeader(headerUserRole))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary		Place a bid
// @Description	Overwrites currentBid with the supplied amount. The creator cannot bid on their own auction.
// @Tags			Auctions
// @Param			id		path		string			true	"Auction ID"
// @Param			body	body		PlaceBidBody	true	"Bid payload"
// @Success		200		{object}	models.Auction
// @Failure		403		{object}	MessageResponse
// @Failure		404		{object}	MessageResponse
// @Router			/api/auctions/bid/{id} [put]
func (h *Handler) bid(c *gin.Context) {
	var body PlaceBidBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	amount := body.BidAmount
	if amount == nil {
		amount = body.CurrentBid
	}
	if amount == nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "bidAmount is required"})
		return
	}

	out, err := h.svc.Bid(c.Request.Context(), c.Param("id"), *amount, c.GetHeader(headerUserID))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary		Delete an auction
// @Description	Permanent removal by the creator or an admin.
// @Tags			Auctions
// @Param			id	path		string	true	"Auction ID"
// @Success		200	{object}	MessageResponse
// @Failure		401	{object}	MessageResponse
// @Failure		404	{object}	MessageResponse
// @Router			/api/auctions/{id} [delete]
func (h *Handler) remove(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"),
		c.GetHeader(headerUserID), c.GetHeader(headerUserRole))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Auction deleted successfully"})
}

// saveImage stores an optional multipart "image" file and returns its public
// URL. A false return means the response has already been written.
func (h *Handler) saveImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		// JSON bodies and image-less forms land here.
		return "", true
	}
	imageURL, err := h.uploads.Save(c, file)
	if err != nil {
		zap.L().Error("image_save_failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "operation failed"})
		return "", false
	}
	return imageURL, true
}

// fail maps service errors to status codes. Persistence failures are logged
// and never echoed to the client.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auction.ErrAuctionNotFound):
		c.JSON(http.StatusNotFound, MessageResponse{Message: "Auction not found"})
	case errors.Is(err, auction.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "User not authorized"})
	case errors.Is(err, auction.ErrOwnAuctionBid):
		c.JSON(http.StatusForbidden, MessageResponse{Message: err.Error()})
	case errors.Is(err, auction.ErrValidation):
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	default:
		zap.L().Error("auction_op_failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "operation failed"})
	}
}
