package handlers

import (
	"net/http"

	"github.com/leaguehub/leaguehub/internal/httpserver/deps"
	"github.com/leaguehub/leaguehub/internal/logger"
)

// Reload triggers a manual reload of content documents and the news feed
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentTriggered := false
		select {
		case d.ReloadTrigger <- struct{}{}:
			contentTriggered = true
			d.Logger.Info("manual content reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
		default:
			d.Logger.Warn("content reload already in progress",
				logger.String("remote_ip", r.RemoteAddr))
		}

		newsTriggered := false
		if d.NewsReloadTrigger != nil {
			select {
			case d.NewsReloadTrigger <- struct{}{}:
				newsTriggered = true
				d.Logger.Info("manual news reload triggered via endpoint",
					logger.String("remote_ip", r.RemoteAddr))
			default:
				d.Logger.Warn("news reload already in progress",
					logger.String("remote_ip", r.RemoteAddr))
			}
		}

		if contentTriggered || newsTriggered {
			w.WriteHeader(http.StatusAccepted)
			if _, err := w.Write([]byte("reload triggered\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		} else {
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write([]byte("reload already in progress, please wait\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		}
	}
}
