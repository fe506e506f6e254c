package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// document is one published representation and its HTTP cache metadata.
type document struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// feed pairs a route with its MIME type and latest document.
type feed struct {
	mime string
	doc  atomic.Pointer[document]
}

// FeedServer publishes the latest picked selection on localhost so calendar
// and contact clients can subscribe to it.
type FeedServer struct {
	Port string

	calendar feed
	contact  feed
}

// NewFeedServer creates a server that is not yet listening.
func NewFeedServer(port string) *FeedServer {
	s := &FeedServer{Port: port}
	s.calendar.mime = config.MimeTextCalendar
	s.contact.mime = config.MimeTextVCard
	return s
}

// Start binds the listener and blocks until ctx is cancelled.
func (s *FeedServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Handler routes the two feeds.
func (s *FeedServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteICS, s.calendar.serve)
	mux.HandleFunc(config.RouteVCard, s.contact.serve)
	return mux
}

// Publish atomically replaces both representations of the selection.
func (s *FeedServer) Publish(ics, vcf []byte) {
	s.calendar.update(ics, config.RouteICS)
	s.contact.update(vcf, config.RouteVCard)
}

func (f *feed) update(data []byte, route string) {
	if data == nil {
		return
	}
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	f.doc.Store(&document{
		data:         data,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	})

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyRoute, route,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// serve writes the document with conditional-request support.
func (f *feed) serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	doc := f.doc.Load()
	if doc == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, f.mime)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, doc.etag)
	w.Header().Set(config.HeaderLastModified, doc.lastModified)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == doc.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, doc.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(doc.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}
