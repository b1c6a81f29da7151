package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type CreateRequestRequest struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

type RequestResponse struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Status     string `json:"status"`
	RewardPool int    `json:"rewardPool"`
	Votes      int    `json:"votes"`
	Voted      bool   `json:"voted"`
}

func (h Handler) RequestsListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	views, err := h.svc.ListRequests(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	resp := make([]RequestResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, RequestResponse{
			ID:         v.ID,
			Title:      v.Title,
			Artist:     v.Artist,
			Status:     v.Status,
			RewardPool: v.RewardPool,
			Votes:      v.Votes,
			Voted:      v.Voted,
		})
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h Handler) CreateRequestHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	var req CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	if req.Title == "" || req.Artist == "" {
		respondWithError(w, http.StatusBadRequest, "Неверные параметры запроса")
		return
	}
	created, err := h.svc.OpenRequest(r.Context(), userID, req.Title, req.Artist)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, RequestResponse{
		ID:     created.ID,
		Title:  created.Title,
		Artist: created.Artist,
		Status: created.Status,
	})
}

func (h Handler) VoteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	requestID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный идентификатор заявки")
		return
	}
	if err := h.svc.Vote(r.Context(), userID, requestID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) UnvoteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	requestID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный идентификатор заявки")
		return
	}
	if err := h.svc.Unvote(r.Context(), userID, requestID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) NotificationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	notifications, err := h.svc.ListNotifications(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	type notificationResponse struct {
		ID      int    `json:"id"`
		Message string `json:"message"`
		Seen    bool   `json:"seen"`
	}
	resp := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, notificationResponse{
			ID:      n.ID,
			Message: n.Message,
			Seen:    n.Seen,
		})
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h Handler) NotificationSeenHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Пользователь не найден в контексте")
		return
	}
	notificationID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный идентификатор уведомления")
		return
	}
	if err := h.svc.MarkNotificationSeen(r.Context(), notificationID, userID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type RechargeRequest struct {
	Username string `json:"username"`
	Amount   int    `json:"amount"`
}

func (h Handler) RechargeHandler(w http.ResponseWriter, r *http.Request) {
	var req RechargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	if req.Username == "" {
		respondWithError(w, http.StatusBadRequest, "Неверные параметры запроса")
		return
	}
	if err := h.svc.RechargeUser(r.Context(), req.Username, req.Amount); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type ApproveRequest struct {
	Reward int `json:"reward"`
}

func (h Handler) ApproveHandler(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный идентификатор заявки")
		return
	}
	var req ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный запрос")
		return
	}
	if err := h.svc.ApproveRequest(r.Context(), requestID, req.Reward); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) RejectHandler(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Неверный идентификатор заявки")
		return
	}
	if err := h.svc.RejectRequest(r.Context(), requestID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
