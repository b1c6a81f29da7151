package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"trackshop/models"
	"trackshop/service"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/mux"
)

type Handler struct {
	svc       service.Service
	jwtSecret string
}

func NewHandler(svc service.Service, jwtSecret string) Handler {
	return Handler{
		svc:       svc,
		jwtSecret: jwtSecret,
	}
}

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Errors string `json:"errors"`
}

func (h Handler) AuthHandler(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Неверные параметры запроса")
		return
	}
	token, err := h.svc.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, AuthResponse{Token: token})
}

func (h Handler) InfoHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	info, err := h.svc.GetInfo(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, info)
}

func (h Handler) TracksHandler(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.svc.ListTracks(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	type trackResponse struct {
		ID     int    `json:"id"`
		Title  string `json:"title"`
		Artist string `json:"artist"`
		Price  int    `json:"price"`
	}
	resp := make([]trackResponse, 0, len(tracks))
	for _, t := range tracks {
		resp = append(resp, trackResponse{
			ID:     t.ID,
			Title:  t.Title,
			Artist: t.Artist,
			Price:  t.Price,
		})
	}
	respondWithJSON(w, http.StatusOK, resp)
}

type BuyResponse struct {
	DownloadID int    `json:"downloadId"`
	Token      string `json:"token"`
	ValidUntil string `json:"validUntil"`
}

func (h Handler) BuyHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	vars := mux.Vars(r)
	trackID, err := strconv.Atoi(vars["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный идентификатор трека")
		return
	}
	d, issued, err := h.svc.BuyTrack(r.Context(), userID, trackID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if issued {
		purchasesTotal.Inc()
	}
	respondWithJSON(w, http.StatusOK, BuyResponse{
		DownloadID: d.ID,
		Token:      d.Token,
		ValidUntil: d.ValidUntil.Format(time.RFC3339),
	})
}

func (h Handler) DownloadHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	track, err := h.svc.RedeemDownload(r.Context(), vars["token"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	redemptionsTotal.Inc()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"track": map[string]interface{}{
			"id":     track.ID,
			"title":  track.Title,
			"artist": track.Artist,
		},
	})
}

func (h Handler) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	info, err := h.svc.DescribeDownload(r.Context(), vars["token"])
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, info)
}

func (h Handler) BonusHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	granted, err := h.svc.GrantDailyBonus(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if granted {
		bonusGrantsTotal.Inc()
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"granted": granted})
}

func (h Handler) JWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondWithError(w, http.StatusUnauthorized, "Отсутствует токен авторизации")
			return
		}

		const bearerPrefix = "Bearer "
		if len(authHeader) <= len(bearerPrefix) {
			respondWithError(w, http.StatusUnauthorized, "Неверный формат токена")
			return
		}

		tokenStr := authHeader[len(bearerPrefix):]
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return []byte(h.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			respondWithError(w, http.StatusUnauthorized, "Неверный токен")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Неверные данные токена")
			return
		}
		uid, err := strconv.Atoi(stringify(claims["user_id"]))
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Неверный идентификатор пользователя в токене")
			return
		}
		role, _ := claims["role"].(string)
		ctx := context.WithValue(r.Context(), "user_id", uid)
		ctx = context.WithValue(ctx, "role", role)
		next(w, r.WithContext(ctx))
	}
}

func (h Handler) AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value("role").(string)
		if role != models.RoleAdmin {
			respondWithError(w, http.StatusForbidden, "Требуются права администратора")
			return
		}
		next(w, r)
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrExpired):
		respondWithError(w, http.StatusGone, err.Error())
	case errors.Is(err, models.ErrAlreadyConsumed),
		errors.Is(err, models.ErrDuplicateRequest),
		errors.Is(err, models.ErrAlreadySatisfied),
		errors.Is(err, models.ErrAlreadyVoted),
		errors.Is(err, models.ErrNotVoted),
		errors.Is(err, models.ErrNotEditable):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrInsufficientTokens),
		errors.Is(err, models.ErrInvalidAmount):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Внутренняя ошибка")
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Errors: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func stringify(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case float64:
		return strconv.Itoa(int(v))
	default:
		return ""
	}
}
