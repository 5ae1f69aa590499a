package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/ytclipper/ytclipper/internal/clipboard"
	"github.com/ytclipper/ytclipper/internal/clips"
	"github.com/ytclipper/ytclipper/internal/export"
	"github.com/ytclipper/ytclipper/internal/logging"
	"github.com/ytclipper/ytclipper/internal/session"
	"github.com/ytclipper/ytclipper/internal/share"
	"github.com/ytclipper/ytclipper/internal/youtube"
)

type builderPage struct {
	Form       clips.Form
	Derived    DeriveResponse
	PlayerURL  string
	Clips      []ClipResponse
	FocusTitle bool
}

type clipPage struct {
	share.SharedClip
	EmbedURL      string
	AbsoluteLink  string
	CreateMoreURL string
	CopiedMessage string
	FailedMessage string
}

func newBuilderPage(cfg ServerConfig, v session.View) builderPage {
	p := builderPage{
		Form:    v.Form,
		Derived: DeriveForm(cfg.Player, v.Form),
		Clips:   make([]ClipResponse, len(v.Clips)),
	}
	if p.Derived.VideoID != "" {
		p.PlayerURL = cfg.Player.Embed(p.Derived.VideoID)
	}
	for i, c := range v.Clips {
		p.Clips[i] = ClipToResponse(cfg.Player, p.Derived.VideoID, c, i == v.Active)
	}
	return p
}

func builderPageHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := SessionFrom(r.Context())

		if u := r.URL.Query().Get("url"); u != "" {
			s.SetVideo(u)
		}

		page := newBuilderPage(cfg, s.View())
		page.FocusTitle = r.URL.Query().Get("added") != ""
		renderPage(w, cfg.Logger, http.StatusOK, "builder", page)
	}
}

func formFromValues(v url.Values) clips.Form {
	return clips.Form{
		Video: v.Get("video"),
		Start: v.Get("start"),
		End:   v.Get("end"),
		Title: v.Get("title"),
	}
}

func updateFormPageHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		SessionFrom(r.Context()).SetForm(formFromValues(r.PostForm))
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func addClipPageHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		s := SessionFrom(r.Context())

		c, err := s.Submit(formFromValues(r.PostForm))
		if err != nil {
			// The builder page shows why the form cannot be added.
			logging.WithSessionID(cfg.Logger, s.ID).Debug("clip rejected", "error", err)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		logging.WithSessionID(cfg.Logger, s.ID).Debug("clip added", "clip_id", c.ID, "start", c.Start, "end", c.End)
		http.Redirect(w, r, "/?added="+url.QueryEscape(c.ID)+"#clip-"+c.ID, http.StatusSeeOther)
	}
}

func removeClipPageHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := SessionFrom(r.Context())
		id := chi.URLParam(r, "id")
		if s.RemoveClip(id) {
			logging.WithSessionID(cfg.Logger, s.ID).Debug("clip removed", "clip_id", id)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func exportEDLHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := SessionFrom(r.Context()).View()

		videoID := v.VideoID()
		if videoID == "" {
			WriteError(w, http.StatusUnprocessableEntity, clips.ErrNoVideo.Error(), "INVALID_CLIP")
			return
		}
		if len(v.Clips) == 0 {
			WriteError(w, http.StatusNotFound, "no clips to export", "NOT_FOUND")
			return
		}

		title := export.SanitizeName(r.URL.Query().Get("title"), 120)
		if title == "" {
			title = "YouTube clips " + videoID
		}

		edl := export.GenerateEDL(export.FromClips(videoID, v.Clips), title, export.DefaultFrameRate)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(title, ".edl")+`"`)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(edl))
	}
}

func clipPageHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc := share.Parse(r.URL.Query())

		page := clipPage{
			SharedClip:    sc,
			CreateMoreURL: "/?url=" + url.QueryEscape(youtube.WatchURL(sc.VideoID)),
			CopiedMessage: clipboard.CopiedMessage,
			FailedMessage: clipboard.FailedPrefix,
		}
		if sc.Valid {
			page.EmbedURL = cfg.Player.EmbedRange(sc.VideoID, sc.Start, sc.End, true)
			page.AbsoluteLink = share.AbsoluteLink(baseURL(cfg, r), sc.VideoID, sc.Clip())
		}

		renderPage(w, cfg.Logger, http.StatusOK, "clip", page)
	}
}
