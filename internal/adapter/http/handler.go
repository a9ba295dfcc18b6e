package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"quackmate/internal/app/auth"
	"quackmate/internal/app/flock"
	"quackmate/internal/app/history"
	"quackmate/internal/app/minigame"
	"quackmate/internal/app/petcare"
	"quackmate/internal/app/ports"
	"quackmate/internal/app/shop"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const authorizationHeader = "Authorization"
const bearerPrefix = "Bearer "

type Handler struct {
	RegisterUC   auth.RegisterUseCase
	LoginUC      auth.LoginUseCase
	DeactivateUC auth.DeactivateUseCase
	Verifier     auth.TokenVerifier

	ListUC   flock.ListUseCase
	GetUC    flock.GetUseCase
	CreateUC flock.CreateUseCase

	CareUC petcare.UseCase

	FinishUC     minigame.FinishUseCase
	GameHistory  minigame.HistoryUseCase
	HighScoresUC minigame.HighScoresUseCase

	BuyUC   shop.BuyUseCase
	EquipUC shop.EquipHatUseCase

	HistoryUC history.UseCase

	Catalog ports.CatalogProvider
	KPI     kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	authGroup := s.Group("/api/auth")
	authGroup.POST("/register", h.register)
	authGroup.POST("/login", h.login)
	authGroup.POST("/deactivate", h.deactivate)

	pets := s.Group("/api/pets")
	pets.GET("", h.listPets)
	pets.POST("", h.createPet)
	pets.GET("/:id", h.getPet)
	pets.POST("/:id/action", h.petAction)
	pets.POST("/:id/minigame", h.finishMinigame)
	pets.POST("/:id/hat", h.equipHat)
	pets.GET("/:id/history", h.petHistory)

	games := s.Group("/api/minigames")
	games.GET("/history", h.gameHistory)
	games.GET("/highscores", h.highScores)

	s.POST("/api/shop/buy", h.buy)
	s.GET("/api/catalog", h.catalog)
	s.GET("/ops/kpi", h.kpi)
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createPetRequest struct {
	Name string `json:"name"`
}

type petActionRequest struct {
	Action string `json:"action"`
	FoodID int    `json:"food_id,omitempty"`
}

type finishMinigameRequest struct {
	GameType         string `json:"game_type"`
	Score            int    `json:"score"`
	Correct          int    `json:"correct,omitempty"`
	Total            int    `json:"total,omitempty"`
	TimeTakenSeconds int    `json:"time_taken_seconds,omitempty"`
}

type buyRequest struct {
	ItemType string `json:"item_type"`
	ItemID   int    `json:"item_id"`
}

type equipHatRequest struct {
	HatID int `json:"hat_id"`
}

func (h Handler) register(c context.Context, ctx *app.RequestContext) {
	var body registerRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.RegisterUC.Execute(c, auth.RegisterRequest{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) login(c context.Context, ctx *app.RequestContext) {
	var body loginRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.LoginUC.Execute(c, auth.LoginRequest{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) deactivate(c context.Context, ctx *app.RequestContext) {
	accountID, err := h.requireAccount(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if err := h.DeactivateUC.Execute(c, accountID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"deactivated": true})
}

func (h Handler) listPets(c context.Context, ctx *app.RequestContext) {
	accountID, err := h.requireAccount(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.ListUC.Execute(c, flock.ListRequest{AccountID: accountID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) getPet(c context.Context, ctx *app.RequestContext) {
	accountID, err := h.requireAccount(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.GetUC.Execute(c, flock.GetRequest{
		AccountID: accountID,
		PetID:     string(ctx.Param("id")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) createPet(c context.Context, ctx *app.RequestContext) {
	accountID, err := h.requireAccount(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body createPetRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CreateUC.Execute(c, flock.CreateRequest{
		AccountID: accountID,
		Name:      body.Name,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) petAction(c context.Context, ctx *app.RequestContext) {
	accountID, err := h.requireAccount(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body petActionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CareUC.Execute(c, petcare.Request{
		AccountID: accountID,
		PetID:     string(ctx.Param("id")),
		Action:    petcare.ActionType(body.Action),
		FoodID:    body.FoodID,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) finishMinigame(c context.Context, ctx *app.RequestContext) {
	accountID, err := h.requireAccount(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body finishMinigameRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.FinishUC.Execute(c, minigame.FinishRequest{
		AccountID:        accountID,
		PetID:            string(ctx.Param("id")),
		GameType:         body.GameType,
		Score:            body.Score,
		Correct:          body.Correct,
		Total:            body.Total,
		TimeTakenSeconds: body.TimeTakenSeconds,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) equipHat(c context.Context, ctx *app.RequestContext) {
	accountID, err := h.requireAccount(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body equipHatRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.EquipUC.Execute(c, shop.EquipHatRequest{
		AccountID: accountID,
		PetID:     string(ctx.Param("id")),
		HatID:     body.HatID,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) petHistory(c context.Context, ctx *app.RequestContext) {
	accountID, err := h.requireAccount(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.HistoryUC.Execute(c, history.Request{
		AccountID:    accountID,
		PetID:        string(ctx.Param("id")),
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) gameHistory(c context.Context, ctx *app.RequestContext) {
	accountID, err := h.requireAccount(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.GameHistory.Execute(c, minigame.HistoryRequest{
		AccountID: accountID,
		Limit:     limit,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) highScores(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.HighScoresUC.Execute(c, minigame.HighScoresRequest{
		GameType: string(ctx.Query("game_type")),
		Limit:    limit,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) buy(c context.Context, ctx *app.RequestContext) {
	accountID, err := h.requireAccount(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body buyRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.BuyUC.Execute(c, shop.BuyRequest{
		AccountID: accountID,
		ItemType:  shop.ItemType(body.ItemType),
		ItemID:    body.ItemID,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) catalog(_ context.Context, ctx *app.RequestContext) {
	if h.Catalog == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "catalog not configured")
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"foods": h.Catalog.Foods(),
		"hats":  h.Catalog.Hats(),
	})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingToken = errors.New("missing bearer token")

func (h Handler) requireAccount(ctx *app.RequestContext) (string, error) {
	header := strings.TrimSpace(string(ctx.GetHeader(authorizationHeader)))
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrMissingToken
	}
	return h.Verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingToken):
		writeErrorBody(ctx, consts.StatusUnauthorized, "missing_token", err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_token", err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, auth.ErrUsernameTaken):
		writeErrorBody(ctx, consts.StatusConflict, "username_taken", err.Error())
	case errors.Is(err, petcare.ErrNotPetOwner),
		errors.Is(err, minigame.ErrNotPetOwner),
		errors.Is(err, flock.ErrNotPetOwner),
		errors.Is(err, history.ErrNotPetOwner),
		errors.Is(err, shop.ErrNotPetOwner):
		writeErrorBody(ctx, consts.StatusForbidden, "not_pet_owner", err.Error())
	case errors.Is(err, shop.ErrInsufficientCoins):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_coins", err.Error())
	case errors.Is(err, shop.ErrAlreadyOwned):
		writeErrorBody(ctx, consts.StatusConflict, "already_owned", err.Error())
	case errors.Is(err, shop.ErrHatNotOwned),
		errors.Is(err, petcare.ErrFoodNotOwned):
		writeErrorBody(ctx, consts.StatusConflict, "item_not_owned", err.Error())
	case errors.Is(err, shop.ErrPetDead):
		writeErrorBody(ctx, consts.StatusConflict, "pet_dead", err.Error())
	case errors.Is(err, shop.ErrUnknownItem),
		errors.Is(err, petcare.ErrUnknownFood):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_item", err.Error())
	case errors.Is(err, auth.ErrInvalidUsername),
		errors.Is(err, auth.ErrInvalidPassword),
		errors.Is(err, flock.ErrInvalidPetName):
		writeErrorBody(ctx, consts.StatusBadRequest, "validation_failed", err.Error())
	case errors.Is(err, auth.ErrInvalidRequest),
		errors.Is(err, petcare.ErrInvalidRequest),
		errors.Is(err, minigame.ErrInvalidRequest),
		errors.Is(err, flock.ErrInvalidRequest),
		errors.Is(err, history.ErrInvalidRequest),
		errors.Is(err, shop.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
