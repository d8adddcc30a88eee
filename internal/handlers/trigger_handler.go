package handlers

import (
	"context"
	"net/http"

	"github.com/anonto42/boujee-triggers/internal/events"
	"github.com/anonto42/boujee-triggers/internal/models"
	"github.com/anonto42/boujee-triggers/internal/triggers"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Document path bindings of each trigger.
const (
	PostPattern       = "Posts/{postId}"
	UserPattern       = "Users/{userId}"
	FollowerPattern   = "Users/{userID}/Followers/{followerID}"
	ReviewPattern     = "Reviews/{reviewId}"
	CommentPattern    = "Comments/{commentId}"
	LiveBoujeePattern = "LiveBoujees/{postId}"
)

// eventIDHeader carries the CloudEvents id of a pushed event.
const eventIDHeader = "Ce-Id"

// TriggerService is implemented by triggers.Service
type TriggerService interface {
	OnPostCreated(ctx context.Context, postID string, post models.Post) triggers.Result
	OnUserUpdated(ctx context.Context, userID string, before, after models.User) (triggers.Result, error)
	OnFollowerCreated(ctx context.Context, userID, followerID string) triggers.Result
	OnReviewCreated(ctx context.Context, reviewID string, review models.Review) triggers.Result
	OnCommentCreated(ctx context.Context, commentID string, comment models.Comment) triggers.Result
	OnLiveBoujeeCreated(ctx context.Context, postID string, live models.LiveBoujee) triggers.Result
	Reject(ctx context.Context, trigger string, err error) triggers.Result
}

// TriggerHandler receives Firestore change events pushed over HTTP
type TriggerHandler struct {
	service   TriggerService
	validator events.Validator
	logger    *zap.Logger
}

// NewTriggerHandler creates a new TriggerHandler
func NewTriggerHandler(service TriggerService, validator events.Validator, logger *zap.Logger) *TriggerHandler {
	return &TriggerHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// RegisterTriggerRoutes registers one route per document binding
func (h *TriggerHandler) RegisterTriggerRoutes(g *echo.Group) {
	g.POST("/posts/created", h.PostCreated)
	g.POST("/users/updated", h.UserUpdated)
	g.POST("/followers/created", h.FollowerCreated)
	g.POST("/reviews/created", h.ReviewCreated)
	g.POST("/comments/created", h.CommentCreated)
	g.POST("/live-boujees/created", h.LiveBoujeeCreated)
}

// invocation is one decoded event with its resolved path parameters.
type invocation struct {
	ctx    context.Context
	event  events.FirestoreEvent
	params map[string]string
}

func (h *TriggerHandler) bind(c echo.Context, pattern string) (*invocation, error) {
	var event events.FirestoreEvent
	if err := c.Bind(&event); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid event body")
	}

	params, err := event.Params(pattern)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	eventID := c.Request().Header.Get(eventIDHeader)
	if eventID == "" {
		eventID = uuid.NewString()
	}
	return &invocation{
		ctx:    triggers.WithLogger(c.Request().Context(), h.logger.With(zap.String("event_id", eventID))),
		event:  event,
		params: params,
	}, nil
}

func respond(c echo.Context, res triggers.Result) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": res})
}

// PostCreated handles Posts/{postId} create
func (h *TriggerHandler) PostCreated(c echo.Context) error {
	inv, err := h.bind(c, PostPattern)
	if err != nil {
		return err
	}

	var post models.Post
	if err := events.Decode(inv.event.Value, &post, h.validator); err != nil {
		return respond(c, h.service.Reject(inv.ctx, triggers.TriggerPostCreated, err))
	}
	return respond(c, h.service.OnPostCreated(inv.ctx, inv.params["postId"], post))
}

// profileImage is the only User field the update trigger reads, so unrelated
// fields of an unexpected shape cannot block propagation.
type profileImage struct {
	UserProfileImageURL string `json:"userProfileImageURL"`
}

// UserUpdated handles Users/{userId} update. A failed propagation answers 500
// so the event is redelivered.
func (h *TriggerHandler) UserUpdated(c echo.Context) error {
	inv, err := h.bind(c, UserPattern)
	if err != nil {
		return err
	}

	var before, after profileImage
	if err := events.Decode(inv.event.OldValue, &before, nil); err != nil {
		return respond(c, h.service.Reject(inv.ctx, triggers.TriggerUserUpdated, err))
	}
	if err := events.Decode(inv.event.Value, &after, nil); err != nil {
		return respond(c, h.service.Reject(inv.ctx, triggers.TriggerUserUpdated, err))
	}

	res, err := h.service.OnUserUpdated(inv.ctx, inv.params["userId"],
		models.User{UserProfileImageURL: before.UserProfileImageURL},
		models.User{UserProfileImageURL: after.UserProfileImageURL})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "data": res, "error": err.Error()})
	}
	return respond(c, res)
}

// FollowerCreated handles Users/{userID}/Followers/{followerID} create
func (h *TriggerHandler) FollowerCreated(c echo.Context) error {
	inv, err := h.bind(c, FollowerPattern)
	if err != nil {
		return err
	}
	return respond(c, h.service.OnFollowerCreated(inv.ctx, inv.params["userID"], inv.params["followerID"]))
}

// ReviewCreated handles Reviews/{reviewId} create
func (h *TriggerHandler) ReviewCreated(c echo.Context) error {
	inv, err := h.bind(c, ReviewPattern)
	if err != nil {
		return err
	}

	var review models.Review
	if err := events.Decode(inv.event.Value, &review, h.validator); err != nil {
		return respond(c, h.service.Reject(inv.ctx, triggers.TriggerReviewCreated, err))
	}
	return respond(c, h.service.OnReviewCreated(inv.ctx, inv.params["reviewId"], review))
}

// CommentCreated handles Comments/{commentId} create
func (h *TriggerHandler) CommentCreated(c echo.Context) error {
	inv, err := h.bind(c, CommentPattern)
	if err != nil {
		return err
	}

	var comment models.Comment
	if err := events.Decode(inv.event.Value, &comment, h.validator); err != nil {
		return respond(c, h.service.Reject(inv.ctx, triggers.TriggerCommentCreated, err))
	}
	return respond(c, h.service.OnCommentCreated(inv.ctx, inv.params["commentId"], comment))
}

// LiveBoujeeCreated handles LiveBoujees/{postId} create
func (h *TriggerHandler) LiveBoujeeCreated(c echo.Context) error {
	inv, err := h.bind(c, LiveBoujeePattern)
	if err != nil {
		return err
	}

	var live models.LiveBoujee
	if err := events.Decode(inv.event.Value, &live, h.validator); err != nil {
		return respond(c, h.service.Reject(inv.ctx, triggers.TriggerLiveBoujeeCreated, err))
	}
	return respond(c, h.service.OnLiveBoujeeCreated(inv.ctx, inv.params["postId"], live))
}
