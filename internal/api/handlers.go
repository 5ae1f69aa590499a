package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ytclipper/ytclipper/internal/clips"
	"github.com/ytclipper/ytclipper/internal/share"
)

func healthHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, HealthResponse{
			Status:   "ok",
			Version:  cfg.Version,
			UptimeS:  int64(time.Since(cfg.StartTime).Seconds()),
			Sessions: cfg.Sessions.Registry().Len(),
		})
	}
}

func deriveHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := clips.Form{Video: q.Get("input"), Start: q.Get("start"), End: q.Get("end")}
		WriteJSON(w, http.StatusOK, DeriveForm(cfg.Player, f))
	}
}

func shareHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc := share.Parse(r.URL.Query())

		resp := ShareResponse{SharedClip: sc}
		if sc.Valid {
			resp.Link = sc.Link()
			resp.AbsoluteLink = share.AbsoluteLink(baseURL(cfg, r), sc.VideoID, sc.Clip())
			resp.EmbedURL = cfg.Player.EmbedRange(sc.VideoID, sc.Start, sc.End, true)
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

func getFormHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := SessionFrom(r.Context()).Form()
		WriteJSON(w, http.StatusOK, FormResponse{Form: f, Derived: DeriveForm(cfg.Player, f)})
	}
}

func putFormHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		f := clips.Form(req)
		SessionFrom(r.Context()).SetForm(f)
		WriteJSON(w, http.StatusOK, FormResponse{Form: f, Derived: DeriveForm(cfg.Player, f)})
	}
}

func listClipsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := SessionFrom(r.Context()).View()
		videoID := v.VideoID()

		resp := ClipsResponse{
			VideoID: videoID,
			Form:    v.Form,
			Clips:   make([]ClipResponse, len(v.Clips)),
		}
		for i, c := range v.Clips {
			resp.Clips[i] = ClipToResponse(cfg.Player, videoID, c, i == v.Active)
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

func getClipHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := SessionFrom(r.Context())
		c, active, ok := s.Clip(chi.URLParam(r, "id"))
		if !ok {
			WriteError(w, http.StatusNotFound, "clip not found", "NOT_FOUND")
			return
		}
		WriteJSON(w, http.StatusOK, ClipToResponse(cfg.Player, s.Form().VideoID(), c, active))
	}
}

// addClipHandler overlays the non-empty request fields on the session form
// and adds a clip from the result.
func addClipHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		s := SessionFrom(r.Context())
		f := s.Form()
		if req.Video != "" {
			f.Video = req.Video
		}
		if req.Start != "" {
			f.Start = req.Start
		}
		if req.End != "" {
			f.End = req.End
		}
		if req.Title != "" {
			f.Title = req.Title
		}

		c, err := s.Submit(f)
		if err != nil {
			WriteError(w, http.StatusUnprocessableEntity, err.Error(), "INVALID_CLIP")
			return
		}

		WriteJSON(w, http.StatusCreated, ClipToResponse(cfg.Player, f.VideoID(), c, true))
	}
}

// deleteClipHandler is idempotent: unknown ids also answer 204.
func deleteClipHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			WriteError(w, http.StatusBadRequest, "clip id required", "BAD_REQUEST")
			return
		}

		SessionFrom(r.Context()).RemoveClip(id)
		w.WriteHeader(http.StatusNoContent)
	}
}
